package service

import (
	"time"

	"PredictAdmin/internal/model"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

// DefaultActorID 认证接入前所有写操作记录的占位操作人
const DefaultActorID uint64 = 1

// Options 各业务服务共享的运行参数
type Options struct {
	Logger  *logrus.Logger
	Clock   clockwork.Clock
	ActorID uint64
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	if o.Clock == nil {
		o.Clock = clockwork.NewRealClock()
	}
	if o.ActorID == 0 {
		o.ActorID = DefaultActorID
	}
	return o
}

func (o Options) now() time.Time {
	return o.Clock.Now().UTC()
}

func (o Options) audit() model.Audit {
	return model.NewAudit(o.ActorID)
}

// touch 更新语句统一附带 updated_at / updated_by
func (o Options) touch(fields map[string]interface{}, audited bool) map[string]interface{} {
	fields["updated_at"] = o.now()
	if audited {
		fields["updated_by"] = o.ActorID
	}
	return fields
}
