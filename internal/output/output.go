package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/R167/pysmoke/checkers/common"
)

const (
	bannerWidth  = 50
	sectionWidth = 30
)

type Output interface {
	Banner(title string)
	Section(icon, title string)
	Info(format string, args ...interface{})
	Success(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Error(format string, args ...interface{})
	Detail(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Println(s string)
	Printf(format string, args ...interface{})
}

func banner(title string) string {
	rule := strings.Repeat("=", bannerWidth)
	return fmt.Sprintf("%s\n  %s\n%s", rule, title, rule)
}

func section(icon, title string) string {
	return fmt.Sprintf("\n%s %s\n%s", icon, title, strings.Repeat("-", sectionWidth))
}

type StreamingOutput struct {
	writer io.Writer
	mu     sync.Mutex
}

func NewStreamingOutput(writer io.Writer) *StreamingOutput {
	if writer == nil {
		writer = os.Stdout
	}
	return &StreamingOutput{writer: writer}
}

func (o *StreamingOutput) Banner(title string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.writer, "%s\n", banner(title))
}

func (o *StreamingOutput) Section(icon, title string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.writer, "%s\n", section(icon, title))
}

func (o *StreamingOutput) Info(format string, args ...interface{}) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.writer, format+"\n", args...)
}

func (o *StreamingOutput) Success(format string, args ...interface{}) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.writer, "✅ "+format+"\n", args...)
}

func (o *StreamingOutput) Warning(format string, args ...interface{}) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.writer, "⚠️  "+format+"\n", args...)
}

func (o *StreamingOutput) Error(format string, args ...interface{}) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.writer, "❌ "+format+"\n", args...)
}

func (o *StreamingOutput) Detail(format string, args ...interface{}) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.writer, "   "+format+"\n", args...)
}

func (o *StreamingOutput) Debug(format string, args ...interface{}) {
	if !common.IsDebugMode() {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.writer, "🔍 [DEBUG] "+format+"\n", args...)
}

func (o *StreamingOutput) Println(s string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintln(o.writer, s)
}

func (o *StreamingOutput) Printf(format string, args ...interface{}) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.writer, format, args...)
}

type OutputLine struct {
	Level   string
	Message string
}

type BufferedOutput struct {
	lines []OutputLine
	mu    sync.Mutex
}

func NewBufferedOutput() *BufferedOutput {
	return &BufferedOutput{lines: make([]OutputLine, 0)}
}

func (o *BufferedOutput) append(level, message string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lines = append(o.lines, OutputLine{Level: level, Message: message})
}

func (o *BufferedOutput) Banner(title string) {
	o.append("banner", banner(title))
}

func (o *BufferedOutput) Section(icon, title string) {
	o.append("section", section(icon, title))
}

func (o *BufferedOutput) Info(format string, args ...interface{}) {
	o.append("info", fmt.Sprintf(format, args...))
}

func (o *BufferedOutput) Success(format string, args ...interface{}) {
	o.append("success", fmt.Sprintf("✅ "+format, args...))
}

func (o *BufferedOutput) Warning(format string, args ...interface{}) {
	o.append("warning", fmt.Sprintf("⚠️  "+format, args...))
}

func (o *BufferedOutput) Error(format string, args ...interface{}) {
	o.append("error", fmt.Sprintf("❌ "+format, args...))
}

func (o *BufferedOutput) Detail(format string, args ...interface{}) {
	o.append("detail", fmt.Sprintf("   "+format, args...))
}

func (o *BufferedOutput) Debug(format string, args ...interface{}) {
	if !common.IsDebugMode() {
		return
	}
	o.append("debug", fmt.Sprintf("🔍 [DEBUG] "+format, args...))
}

func (o *BufferedOutput) Println(s string) {
	o.append("info", s)
}

func (o *BufferedOutput) Printf(format string, args ...interface{}) {
	o.append("info", fmt.Sprintf(format, args...))
}

func (o *BufferedOutput) Flush(writer io.Writer) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, line := range o.lines {
		fmt.Fprintln(writer, line.Message)
	}
}

func (o *BufferedOutput) Lines() []OutputLine {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]OutputLine{}, o.lines...)
}

// String renders the buffered transcript as it would have streamed.
func (o *BufferedOutput) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	var sb strings.Builder
	for _, line := range o.lines {
		sb.WriteString(line.Message)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// NoOpOutput is a no-op implementation for tests
type NoOpOutput struct{}

func NewNoOpOutput() *NoOpOutput {
	return &NoOpOutput{}
}

func (o *NoOpOutput) Banner(title string)                        {}
func (o *NoOpOutput) Section(icon, title string)                 {}
func (o *NoOpOutput) Info(format string, args ...interface{})    {}
func (o *NoOpOutput) Success(format string, args ...interface{}) {}
func (o *NoOpOutput) Warning(format string, args ...interface{}) {}
func (o *NoOpOutput) Error(format string, args ...interface{})   {}
func (o *NoOpOutput) Detail(format string, args ...interface{})  {}
func (o *NoOpOutput) Debug(format string, args ...interface{})   {}
func (o *NoOpOutput) Println(s string)                           {}
func (o *NoOpOutput) Printf(format string, args ...interface{})  {}
