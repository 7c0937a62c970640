package decorator

import "strings"

// TextPublisher 文本发布接口，装饰器和被装饰对象都实现它
type TextPublisher interface {
	Publish() string
}

// SimpleText 最底层的文本
type SimpleText struct {
	text string
}

func NewSimpleText(text string) *SimpleText {
	return &SimpleText{text: text}
}

func (s *SimpleText) Publish() string {
	return s.text
}

// 装饰器实例，每个都包一层 TextPublisher

type HTMLDecorator struct {
	component TextPublisher
}

func NewHTMLDecorator(component TextPublisher) TextPublisher {
	return &HTMLDecorator{component: component}
}

func (d *HTMLDecorator) Publish() string {
	return "<html>" + d.component.Publish() + "</html>"
}

type UpperCaseDecorator struct {
	component TextPublisher
}

func NewUpperCaseDecorator(component TextPublisher) TextPublisher {
	return &UpperCaseDecorator{component: component}
}

func (d *UpperCaseDecorator) Publish() string {
	return strings.ToUpper(d.component.Publish())
}

type AsteriskDecorator struct {
	component TextPublisher
}

func NewAsteriskDecorator(component TextPublisher) TextPublisher {
	return &AsteriskDecorator{component: component}
}

func (d *AsteriskDecorator) Publish() string {
	return "*** " + d.component.Publish() + " ***"
}

// Chain 按顺序套装饰器，最后一个在最外层
func Chain(base TextPublisher, decorators ...func(TextPublisher) TextPublisher) TextPublisher {
	for _, d := range decorators {
		base = d(base)
	}
	return base
}
