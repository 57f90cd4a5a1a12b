package service

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// 错误信息里使用 JSON 字段名
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkRequest 只校验字段是否存在/格式，不做业务规则校验
func checkRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	var missing, invalid []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		} else {
			invalid = append(invalid, fe.Field())
		}
	}
	if len(missing) > 0 {
		return validationError("%s %s required", joinFields(missing), pluralVerb(len(missing)))
	}
	return validationError("invalid value for %s", joinFields(invalid))
}

func joinFields(fields []string) string {
	switch len(fields) {
	case 1:
		return fields[0]
	case 2:
		return fields[0] + " and " + fields[1]
	}
	return strings.Join(fields[:len(fields)-1], ", ") + ", and " + fields[len(fields)-1]
}

func pluralVerb(n int) string {
	if n == 1 {
		return "is"
	}
	return "are"
}

// 管理端表单可能提交的时间格式：RFC3339、datetime-local、纯日期
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, validationError("%s must be a valid date", field)
}

func parseOptionalTime(field string, value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	t, err := parseTime(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// normalizeWallet 校验 20 字节十六进制地址并转为 EIP-55 校验和格式
func normalizeWallet(field, addr string) (string, error) {
	addr = strings.TrimSpace(addr)
	if !common.IsHexAddress(addr) {
		return "", validationError("%s must be a 20-byte hex address", field)
	}
	return common.HexToAddress(addr).Hex(), nil
}

// normalizeTxHash 校验 0x 前缀的 32 字节交易哈希，统一为小写
func normalizeTxHash(hash string) (string, error) {
	hash = strings.TrimSpace(hash)
	b, err := hexutil.Decode(hash)
	if err != nil || len(b) != common.HashLength {
		return "", validationError("txHash must be a 0x-prefixed 32-byte hex hash")
	}
	return hexutil.Encode(b), nil
}

// checkPicks picks 必须是非 null 的合法 JSON
func checkPicks(raw json.RawMessage) error {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return validationError("picks is required")
	}
	if !json.Valid(raw) {
		return validationError("picks must be valid JSON")
	}
	return nil
}

func nonEmpty(field string, value *string) error {
	if value != nil && strings.TrimSpace(*value) == "" {
		return validationError("%s must not be empty", field)
	}
	return nil
}
