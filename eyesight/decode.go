package eyesight

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"

	"github.com/The0x539/eyesight-xml2py/ir"
)

var (
	vec3Type     = reflect.TypeOf(ir.Vec3{})
	floatSeqType = reflect.TypeOf([]float32(nil))
	enumType     = reflect.TypeOf((*ir.Enum)(nil)).Elem()
)

// required checks the `validate:"required"` attributes of decoded structs.
// Fields are reported by their attribute name.
var required = newRequiredValidator()

func newRequiredValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeAttrs decodes the attributes of e into out, a pointer to a struct
// with mapstructure tags. Attributes without a matching field are rejected,
// as are missing attributes whose field is tagged required.
func decodeAttrs(e *element, path string, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			vec3Hook,
			floatSeqHook,
			boolHook,
			enumHook,
		),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(e.attrs); err != nil {
		return parseError(e, path, "%s", flattenDecodeError(err))
	}
	return checkRequired(e, path, out)
}

func checkRequired(e *element, path string, out any) error {
	err := required.Struct(out)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return parseError(e, path, "%s", err)
	}
	missing := make([]string, len(verrs))
	for i, fe := range verrs {
		missing[i] = fe.Field()
	}
	return parseError(e, path, "missing required attribute %s", strings.Join(missing, ", "))
}

// flattenDecodeError joins the individual messages of a mapstructure error.
func flattenDecodeError(err error) string {
	if me, ok := err.(*mapstructure.Error); ok {
		return strings.Join(me.Errors, "; ")
	}
	return err.Error()
}

func vec3Hook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != vec3Type {
		return data, nil
	}
	return parseVec3(data.(string))
}

func floatSeqHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != floatSeqType {
		return data, nil
	}
	return parseFloats(data.(string))
}

func boolHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
		return data, nil
	}
	return parseBool(data.(string))
}

// enumHook rejects values outside an enum's closed set.
func enumHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.String || !to.Implements(enumType) {
		return data, nil
	}
	v := reflect.New(to).Elem()
	v.SetString(data.(string))
	if !v.Interface().(ir.Enum).Valid() {
		return nil, fmt.Errorf("invalid %s %q", to.Name(), data)
	}
	return data, nil
}

// parseFloats parses whitespace separated floats. Each may carry a trailing
// comma.
func parseFloats(s string) ([]float32, error) {
	fields := strings.Fields(s)
	out := make([]float32, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseFloat(strings.TrimSuffix(f, ","), 32)
		if err != nil {
			return nil, fmt.Errorf("invalid float %q", f)
		}
		out = append(out, float32(n))
	}
	return out, nil
}

func parseVec3(s string) (ir.Vec3, error) {
	v, err := parseFloats(s)
	if err != nil {
		return ir.Vec3{}, err
	}
	if len(v) != 3 {
		return ir.Vec3{}, fmt.Errorf("expected 3 components, found %d in %q", len(v), s)
	}
	return ir.Vec3{v[0], v[1], v[2]}, nil
}

func parseBool(s string) (bool, error) {
	switch s {
	case "True", "true":
		return true, nil
	case "False", "false":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q, expected true or false", s)
	}
}

// parseLiteral parses a socket value of type t.
func parseLiteral(t ir.SocketType, s string) (ir.Literal, error) {
	switch t {
	case ir.SocketFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
		if err != nil {
			return nil, fmt.Errorf("invalid float %q", s)
		}
		return ir.FloatLiteral(f), nil
	case ir.SocketVector:
		v, err := parseVec3(s)
		if err != nil {
			return nil, err
		}
		return ir.VectorLiteral(v), nil
	case ir.SocketColor:
		v, err := parseVec3(s)
		if err != nil {
			return nil, err
		}
		return ir.ColorLiteral(v), nil
	case ir.SocketInt:
		n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid int %q", s)
		}
		return ir.IntLiteral(n), nil
	case ir.SocketBoolean:
		b, err := parseBool(s)
		if err != nil {
			return nil, err
		}
		return ir.BoolLiteral(b), nil
	default:
		return nil, fmt.Errorf("%s sockets have no literal values", t)
	}
}
