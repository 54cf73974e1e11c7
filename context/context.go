package context

import (
	"io"

	"github.com/poolpOrg/charfreq/logging"
)

// Context carries what an invocation needs to run: the logger, the
// three standard streams, and the process identity used by trace
// output. Streams are injected rather than read from the os package so
// tests can substitute buffers.
type Context struct {
	logger *logging.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	username    string
	hostname    string
	commandLine string
	processID   int
}

func NewContext() *Context {
	return &Context{}
}

func (c *Context) SetLogger(logger *logging.Logger) {
	c.logger = logger
}

func (c *Context) GetLogger() *logging.Logger {
	return c.logger
}

func (c *Context) SetStdin(stdin io.Reader) {
	c.stdin = stdin
}

func (c *Context) GetStdin() io.Reader {
	return c.stdin
}

func (c *Context) SetStdout(stdout io.Writer) {
	c.stdout = stdout
}

func (c *Context) GetStdout() io.Writer {
	return c.stdout
}

func (c *Context) SetStderr(stderr io.Writer) {
	c.stderr = stderr
}

func (c *Context) GetStderr() io.Writer {
	return c.stderr
}

func (c *Context) SetUsername(username string) {
	c.username = username
}

func (c *Context) GetUsername() string {
	return c.username
}

func (c *Context) SetHostname(hostname string) {
	c.hostname = hostname
}

func (c *Context) GetHostname() string {
	return c.hostname
}

func (c *Context) SetCommandLine(commandLine string) {
	c.commandLine = commandLine
}

func (c *Context) GetCommandLine() string {
	return c.commandLine
}

func (c *Context) SetProcessID(processID int) {
	c.processID = processID
}

func (c *Context) GetProcessID() int {
	return c.processID
}
