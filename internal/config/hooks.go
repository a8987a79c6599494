package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
)

var (
	decimalType     = reflect.TypeOf(decimal.Decimal{})
	nullDecimalType = reflect.TypeOf(decimal.NullDecimal{})
	timeType        = reflect.TypeOf(time.Time{})
	stringType      = reflect.TypeOf("")
)

// DecodeHook returns the decode hooks used to unmarshal the configuration:
// the viper defaults plus decimals and calendar dates.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		DateToStringHookFunc(),
		StringToDateHookFunc(),
		DecimalHookFunc(),
	)
}

// DecimalHookFunc converts YAML numbers and strings into decimal.Decimal and
// decimal.NullDecimal. A present value always yields a valid NullDecimal.
func DecimalHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != decimalType && t != nullDecimalType {
			return data, nil
		}
		if f == t {
			return data, nil
		}

		value, err := toDecimal(data)
		if err != nil {
			return nil, err
		}
		if t == nullDecimalType {
			return decimal.NullDecimal{Decimal: value, Valid: true}, nil
		}
		return value, nil
	}
}

// StringToDateHookFunc parses DateLayout strings into time.Time.
func StringToDateHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != timeType {
			return data, nil
		}
		date, err := datetime.ParseDate(data.(string))
		if err != nil {
			return nil, fmt.Errorf("expected date in %s format, got %q", DateLayout, data)
		}
		return date, nil
	}
}

// DateToStringHookFunc turns timestamps the YAML parser produced for
// unquoted dates back into DateLayout strings, and normalizes them when the
// target is a time.Time.
func DateToStringHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f != timeType {
			return data, nil
		}
		date := data.(time.Time)
		switch t {
		case stringType:
			return datetime.FormatDate(date), nil
		case timeType:
			return datetime.StartOfDay(date), nil
		default:
			return data, nil
		}
	}
}

func toDecimal(data interface{}) (decimal.Decimal, error) {
	switch value := data.(type) {
	case string:
		d, err := decimal.NewFromString(value)
		if err != nil {
			return decimal.Zero, fmt.Errorf("expected a decimal number, got %q", value)
		}
		return d, nil
	case int:
		return decimal.NewFromInt(int64(value)), nil
	case int32:
		return decimal.NewFromInt32(value), nil
	case int64:
		return decimal.NewFromInt(value), nil
	case float32:
		return decimal.NewFromFloat32(value), nil
	case float64:
		return decimal.NewFromFloat(value), nil
	default:
		return decimal.Zero, fmt.Errorf("expected a decimal number, got %T", data)
	}
}
