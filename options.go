package hdoc

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	osc8   bool
	width  int
	oracle Oracle
	opener func(topicID string)
	runner func(blockID int, code string)
}

// WithOSC8 enables or disables OSC 8 hyperlinks on terminal sinks.
func WithOSC8(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.osc8 = enabled
	}
}

// WithWidth sets the fill width for prose. Zero disables filling.
func WithWidth(width int) RenderOption {
	return func(cfg *renderConfig) {
		cfg.width = width
	}
}

// WithOracle sets the symbol oracle consulted during rendering.
func WithOracle(oracle Oracle) RenderOption {
	return func(cfg *renderConfig) {
		cfg.oracle = oracle
	}
}

// WithOpener sets the callback bound to internal hyperlinks. Activating
// such a link re-invokes topic opening with the link's document id.
func WithOpener(open func(topicID string)) RenderOption {
	return func(cfg *renderConfig) {
		cfg.opener = open
	}
}

// WithCodeRunner sets the callback bound to code block Run buttons.
// Without it, code blocks are emitted but no button is attached.
func WithCodeRunner(run func(blockID int, code string)) RenderOption {
	return func(cfg *renderConfig) {
		cfg.runner = run
	}
}
