package types

import "fmt"

// VariableKind 未知量类型
type VariableKind uint8

const (
	KindCurrent VariableKind = iota // 电流
	KindCharge                      // 电荷
	KindVoltage                     // 电压
)

// String 返回未知量类型的字符串表示
func (k VariableKind) String() string {
	switch k {
	case KindCurrent:
		return "I"
	case KindCharge:
		return "Q"
	case KindVoltage:
		return "V"
	}
	return "Unknown"
}

// Variable 元件贡献的单个未知量
type Variable struct {
	Kind  VariableKind // 类型
	Value float64      // 数值,组装阶段恒为0
}

// Fixed 是否为状态量(电荷/电压)
func (v Variable) Fixed() bool { return v.Kind != KindCurrent }

// String 格式化输出
func (v Variable) String() string {
	return fmt.Sprintf("%s(%g)", v.Kind, v.Value)
}

// Current 创建电流未知量
func Current() Variable { return Variable{Kind: KindCurrent} }

// Charge 创建电荷未知量
func Charge() Variable { return Variable{Kind: KindCharge} }

// Voltage 创建电压未知量
func Voltage() Variable { return Variable{Kind: KindVoltage} }
