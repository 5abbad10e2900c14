// Package load 解析电路网表文本。
// 每行一个元件: <类型><编号>(<参数>) : <节点1>,<节点2>,例如
//
//	R1(2) : 1,2
//	V2(5) : 2,1
//
// 空行以及以 # 或 // 开头的行被忽略。
package load

import (
	"bufio"
	"fmt"
	"io"
	"kirchhoff/types"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// elementLine 元件定义格式
var elementLine = regexp.MustCompile(
	`^(?P<type>[A-Za-z]+)(?P<index>[0-9]+)\s*\(\s*(?P<value>[-+]?[0-9.]+(?:[eE][-+]?[0-9]+)?)\s*\)\s*:\s*(?P<from>[0-9]+)\s*,\s*(?P<to>[0-9]+)$`)

// LoadString 加载网表字符串
func LoadString(s string) (*types.Circuit, error) {
	return LoadReader(strings.NewReader(s))
}

// LoadFile 加载网表文件
func LoadFile(filename string) (*types.Circuit, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrInput, err)
	}
	defer file.Close()
	return LoadReader(file)
}

// LoadReader 加载网表
func LoadReader(r io.Reader) (*types.Circuit, error) {
	c := &types.Circuit{}
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") || strings.HasPrefix(text, "//") {
			continue
		}
		if err := parseLine(c, text); err != nil {
			return nil, fmt.Errorf("第 %d 行: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("读取网表时出错: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// parseLine 解析单个元件定义
func parseLine(c *types.Circuit, text string) error {
	match := elementLine.FindStringSubmatch(text)
	if match == nil {
		return fmt.Errorf("%w: 元件定义格式错误 %q", types.ErrInput, text)
	}
	field := func(name string) string { return match[elementLine.SubexpIndex(name)] }
	value, err := strconv.ParseFloat(field("value"), 64)
	if err != nil {
		return fmt.Errorf("%w: 参数无效 %q", types.ErrInput, field("value"))
	}
	index, err := strconv.Atoi(field("index"))
	if err != nil {
		return fmt.Errorf("%w: 编号无效 %q", types.ErrInput, field("index"))
	}
	from, err := strconv.Atoi(field("from"))
	if err != nil {
		return fmt.Errorf("%w: 节点无效 %q", types.ErrInput, field("from"))
	}
	to, err := strconv.Atoi(field("to"))
	if err != nil {
		return fmt.Errorf("%w: 节点无效 %q", types.ErrInput, field("to"))
	}
	e, err := types.NewElement(strings.ToUpper(field("type")), value)
	if err != nil {
		return err
	}
	c.Add(e, from, to, index)
	return nil
}

// Export 导出网表
func Export(w io.Writer, c *types.Circuit) error {
	writer := bufio.NewWriter(w)
	for i, e := range c.Elements {
		fmt.Fprintf(writer, "%s%d(%s) : %d,%d\n", e.Type(), c.Labels[i],
			strconv.FormatFloat(e.Value(), 'g', -1, 64), c.Connections[i].From, c.Connections[i].To)
	}
	return writer.Flush()
}
