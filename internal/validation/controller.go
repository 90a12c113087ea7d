package validation

// Controller tracks field values, the active rule set, and which
// fields the user has touched. Errors are always computed from the
// current values and rules, so swapping the rule set retroactively
// re-evaluates everything already entered; touched flags only gate
// whether an error is surfaced, never whether it counts against
// validity.
type Controller struct {
	rules   RuleSet
	values  map[string]string
	touched map[string]bool
}

func NewController(rules RuleSet) *Controller {
	return &Controller{
		rules:   rules,
		values:  make(map[string]string),
		touched: make(map[string]bool),
	}
}

// SetRules replaces the active rule set. Fields no longer covered stop
// reporting errors immediately, and fields newly covered are checked
// against their already-entered values.
func (c *Controller) SetRules(rules RuleSet) {
	c.rules = rules
}

func (c *Controller) SetValue(field, value string) {
	c.values[field] = value
}

func (c *Controller) Value(field string) string {
	return c.values[field]
}

func (c *Controller) Touch(field string) {
	c.touched[field] = true
}

// TouchAll marks every field with active rules touched so that all
// current violations become visible at once.
func (c *Controller) TouchAll() {
	for field := range c.rules {
		c.touched[field] = true
	}
}

func (c *Controller) Touched(field string) bool {
	return c.touched[field]
}

// FieldError returns the message of the first failing rule for a
// touched field, in precedence order, or "" when the field is
// untouched or passes.
func (c *Controller) FieldError(field string) string {
	if !c.touched[field] {
		return ""
	}
	return c.ruleError(field)
}

// Errors returns messages for every touched, failing field.
func (c *Controller) Errors() map[string]string {
	errs := make(map[string]string)
	for field := range c.rules {
		if msg := c.FieldError(field); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

// IsValid reports whether every active rule passes. Touched state is
// a display concern and does not affect the result.
func (c *Controller) IsValid() bool {
	for field := range c.rules {
		if c.ruleError(field) != "" {
			return false
		}
	}
	return true
}

func (c *Controller) ruleError(field string) string {
	for _, rule := range c.rules[field] {
		if !rule.Passes(c.values[field]) {
			return rule.Message()
		}
	}
	return ""
}
