package types

import "fmt"

// ElementType 元件类型
type ElementType uint

// 电路元件类型常量定义
const (
	TypeUnknown       ElementType = iota // 未知类型
	TypeResistor                         // 电阻
	TypeCapacitor                        // 电容
	TypeVoltageSource                    // 电压源
)

// ElementConfig 元件构造函数,由参数值创建元件
type ElementConfig func(value float64) (Element, error)

// slementTypeString 元件映射
var slementTypeString = map[ElementType]struct {
	Name          string
	ElementConfig ElementConfig
}{
	TypeUnknown: {Name: "Unknown", ElementConfig: nil},
}

var mapName = map[string]ElementType{
	"Unknown": TypeUnknown,
}

func init() {
	ElementRegister(TypeResistor, "R", func(value float64) (Element, error) {
		return Resistor{Resistance: value}, nil
	})
	ElementRegister(TypeCapacitor, "C", func(value float64) (Element, error) {
		if value == 0 {
			return nil, fmt.Errorf("%w: 电容值不能为0", ErrInput)
		}
		return Capacitor{Capacitance: value}, nil
	})
	ElementRegister(TypeVoltageSource, "V", func(value float64) (Element, error) {
		return VoltageSource{Voltage: value}, nil
	})
}

// String 返回元件类型的字符串表示
func (t ElementType) String() string {
	if et, ok := slementTypeString[t]; ok {
		return et.Name
	}
	return "Unknown"
}

// New 通过类型创建元件
func (t ElementType) New(value float64) (Element, error) {
	et, ok := slementTypeString[t]
	if !ok || et.ElementConfig == nil {
		return nil, fmt.Errorf("%w: 未知元件类型 %d", ErrInput, t)
	}
	return et.ElementConfig(value)
}

// GetNameType 通过名称获取类型
func GetNameType(name string) ElementType {
	return mapName[name]
}

// NewElement 通过名称创建元件
func NewElement(name string, value float64) (Element, error) {
	t := GetNameType(name)
	if t == TypeUnknown {
		return nil, fmt.Errorf("%w: 未知元件类型 %q", ErrInput, name)
	}
	return t.New(value)
}

// ElementRegister 注册元件类型
func ElementRegister(et ElementType, name string, config ElementConfig) {
	if _, ok := slementTypeString[et]; ok {
		panic(fmt.Errorf("指定元件类型已经注册: %s:%d", name, et))
	}
	mapName[name] = et
	slementTypeString[et] = struct {
		Name          string
		ElementConfig ElementConfig
	}{
		Name:          name,
		ElementConfig: config,
	}
}
