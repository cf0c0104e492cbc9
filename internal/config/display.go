package config

// Default column widths, matching the classic console layout
const (
	DefaultNameWidth  = 15
	DefaultColorWidth = 6
	DefaultRuleWidth  = 50
)

// Display controls the layout of the task listing
type Display struct {
	NameWidth  int `yaml:"name_width"`  // minimum width of the task name column
	ColorWidth int `yaml:"color_width"` // minimum width of the color column
	RuleWidth  int `yaml:"rule_width"`  // width of "=" rules and centered headers
}

// DefaultDisplay returns the default layout
func DefaultDisplay() Display {
	return Display{
		NameWidth:  DefaultNameWidth,
		ColorWidth: DefaultColorWidth,
		RuleWidth:  DefaultRuleWidth,
	}
}

func (d *Display) applyDefaults() {
	if d.NameWidth <= 0 {
		d.NameWidth = DefaultNameWidth
	}
	if d.ColorWidth <= 0 {
		d.ColorWidth = DefaultColorWidth
	}
	if d.RuleWidth <= 0 {
		d.RuleWidth = DefaultRuleWidth
	}
}
