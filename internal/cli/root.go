package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/edtfloc/internal/config"
	"github.com/julianstephens/edtfloc/internal/utils"
	"github.com/julianstephens/edtfloc/pkg/datefmt"
)

type Context struct {
	Config     config.Config
	ConfigPath string
	Formatter  *datefmt.Formatter
	Out        io.Writer
	In         io.Reader
}

// NewContext builds the command context from an already merged config.
// "Today" is taken in the configured timezone.
func NewContext(cfg config.Config, configPath string) (*Context, error) {
	formatter, err := datefmt.NewFormatter(cfg.Locale)
	if err != nil {
		return nil, err
	}
	clock, err := utils.Clock(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	formatter.Now = clock

	return &Context{
		Config:     cfg,
		ConfigPath: configPath,
		Formatter:  formatter,
		Out:        os.Stdout,
		In:         os.Stdin,
	}, nil
}

// Format returns the configured format, falling back to the default style.
func (c *Context) Format() string {
	if c.Config.Format == "" {
		return string(datefmt.DefaultStyle)
	}
	return c.Config.Format
}

// Printf writes to the command output.
func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Out, format, args...)
}

// Println writes to the command output.
func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Out, args...)
}
