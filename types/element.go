package types

import "fmt"

// Element 二端元件接口
// 元件种类封闭: 电阻、电容、理想电压源
type Element interface {
	Type() ElementType            // 元件类型
	Value() float64               // 元件参数(电阻/电容/电压)
	UnknownCount() int            // 未知量数量
	CurrentIndex() int            // 电流未知量在自身未知量中的位置
	Variables() []Variable        // 未知量列表,电流必须在第一位
	VoltageDrop() []float64       // 回路方程中的压降系数
	MitigationBlock() [][]float64 // 元件本构方程块
}

// Resistor 电阻
type Resistor struct{ Resistance float64 }

// Type 类型
func (Resistor) Type() ElementType { return TypeResistor }

// Value 电阻值
func (r Resistor) Value() float64 { return r.Resistance }

// UnknownCount 未知量数量
func (Resistor) UnknownCount() int { return 1 }

// CurrentIndex 电流位置
func (Resistor) CurrentIndex() int { return CurrentIndex }

// Variables 未知量: I
func (Resistor) Variables() []Variable { return []Variable{Current()} }

// VoltageDrop 压降 R·I
func (r Resistor) VoltageDrop() []float64 { return []float64{r.Resistance} }

// MitigationBlock 欧姆定律已并入回路方程
func (Resistor) MitigationBlock() [][]float64 { return [][]float64{{0}} }

// String 格式化输出
func (r Resistor) String() string { return fmt.Sprintf("R(%g)", r.Resistance) }

// Capacitor 电容
type Capacitor struct{ Capacitance float64 }

// Type 类型
func (Capacitor) Type() ElementType { return TypeCapacitor }

// Value 电容值
func (c Capacitor) Value() float64 { return c.Capacitance }

// UnknownCount 未知量数量
func (Capacitor) UnknownCount() int { return 2 }

// CurrentIndex 电流位置
func (Capacitor) CurrentIndex() int { return CurrentIndex }

// Variables 未知量: I, Q
func (Capacitor) Variables() []Variable { return []Variable{Current(), Charge()} }

// VoltageDrop 压降 Q/C
func (c Capacitor) VoltageDrop() []float64 { return []float64{0, 1 / c.Capacitance} }

// MitigationBlock dQ/dt = I
func (Capacitor) MitigationBlock() [][]float64 {
	return [][]float64{
		{0, 0},
		{1, 0},
	}
}

// String 格式化输出
func (c Capacitor) String() string { return fmt.Sprintf("C(%g)", c.Capacitance) }

// VoltageSource 理想电压源
type VoltageSource struct{ Voltage float64 }

// Type 类型
func (VoltageSource) Type() ElementType { return TypeVoltageSource }

// Value 电压值
func (v VoltageSource) Value() float64 { return v.Voltage }

// UnknownCount 未知量数量
func (VoltageSource) UnknownCount() int { return 2 }

// CurrentIndex 电流位置
func (VoltageSource) CurrentIndex() int { return CurrentIndex }

// Variables 未知量: I, V
func (VoltageSource) Variables() []Variable { return []Variable{Current(), Voltage()} }

// VoltageDrop 压降 -V
func (v VoltageSource) VoltageDrop() []float64 { return []float64{0, -v.Voltage} }

// MitigationBlock 电压恒定, dV/dt = 0
func (VoltageSource) MitigationBlock() [][]float64 {
	return [][]float64{
		{0, 0},
		{0, 0},
	}
}

// String 格式化输出
func (v VoltageSource) String() string { return fmt.Sprintf("V(%g)", v.Voltage) }
