package types

import "errors"

// ErrInput 输入错误，网表格式或数值不合法时返回
var ErrInput = errors.New("input error")

// 默认常量定义
const (
	CurrentIndex = 0 // 电流未知量在元件未知量中的位置
	FirstNodeID  = 1 // 节点编号从1开始
)
