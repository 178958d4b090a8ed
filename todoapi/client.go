package todoapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/restpipe/restpipe/codec"
	"github.com/restpipe/restpipe/httpclient"
	"github.com/restpipe/restpipe/logger"
	"github.com/restpipe/restpipe/pipeline"
)

// Client builds request pipelines against a todo backend. Every operation
// returns a lazy pipeline; nothing runs until the caller starts it.
type Client struct {
	builder   *httpclient.Builder
	transport httpclient.Transport
	decoder   codec.Decoder
	log       *logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTransport replaces the default net/http transport.
func WithTransport(t httpclient.Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithDecoder replaces the default JSON decoder.
func WithDecoder(d codec.Decoder) Option {
	return func(c *Client) { c.decoder = d }
}

// WithLogger attaches a logger used for run logging and the transport.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a client for the backend described by cfg.
func New(cfg httpclient.Config, opts ...Option) (*Client, error) {
	builder, err := httpclient.NewBuilder(cfg)
	if err != nil {
		return nil, err
	}
	c := &Client{
		builder: builder,
		decoder: codec.JSON{},
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = httpclient.NewClient(httpclient.WithLogger(c.log))
	}
	return c, nil
}

// Logger returns the client's logger, for passing to pipeline run options.
func (c *Client) Logger() *logger.Logger {
	return c.log
}

// CreateUser registers a new user: POST /users.
func (c *Client) CreateUser(user User) *pipeline.Pipeline[CreateUserResponse] {
	return run[CreateUserResponse](c, "create-user", func() (httpclient.Request, error) {
		if err := checkInput(user); err != nil {
			return httpclient.Request{}, err
		}
		return c.builder.NewRequest(http.MethodPost, "/users", user)
	})
}

// Login exchanges credentials for a token: POST /login with Basic auth.
func (c *Client) Login(email, password string) *pipeline.Pipeline[Token] {
	return run[Token](c, "login", func() (httpclient.Request, error) {
		return c.builder.NewRequest(http.MethodPost, "/login", nil,
			httpclient.WithAuth(httpclient.BasicAuth(email, password)))
	})
}

// CreateTodo creates a todo: POST /todos with Bearer auth.
func (c *Client) CreateTodo(token Token, todo Todo) *pipeline.Pipeline[Todo] {
	return run[Todo](c, "create-todo", func() (httpclient.Request, error) {
		if err := checkInput(todo); err != nil {
			return httpclient.Request{}, err
		}
		return c.builder.NewRequest(http.MethodPost, "/todos", todo,
			httpclient.WithAuth(httpclient.BearerAuth(token.String)))
	})
}

// ListTodos fetches all todos: GET /todos with Bearer auth.
func (c *Client) ListTodos(token Token) *pipeline.Pipeline[[]Todo] {
	return run[[]Todo](c, "list-todos", func() (httpclient.Request, error) {
		return c.builder.NewRequest(http.MethodGet, "/todos", nil,
			httpclient.WithAuth(httpclient.BearerAuth(token.String)))
	})
}

// DeleteTodo deletes a todo by id: DELETE /todos/{id} with Bearer auth.
func (c *Client) DeleteTodo(token Token, id int) *pipeline.Pipeline[Todo] {
	return run[Todo](c, "delete-todo", func() (httpclient.Request, error) {
		return c.builder.NewRequest(http.MethodDelete, fmt.Sprintf("/todos/%d", id), nil,
			httpclient.WithAuth(httpclient.BearerAuth(token.String)))
	})
}

// LoginAndCreateTodo chains login into todo creation: the token from a
// successful login parameterizes the dependent request. If login fails, the
// todo request is never built or sent and the composite fails with login's
// error.
func (c *Client) LoginAndCreateTodo(email, password string, todo Todo) *pipeline.Pipeline[Todo] {
	return pipeline.Chain(c.Login(email, password), func(token Token) *pipeline.Pipeline[Todo] {
		return c.CreateTodo(token, todo)
	})
}

// SignupAndLogin registers a user and immediately logs in with the same
// credentials.
func (c *Client) SignupAndLogin(user User) *pipeline.Pipeline[Token] {
	return pipeline.Chain(c.CreateUser(user), func(_ CreateUserResponse) *pipeline.Pipeline[Token] {
		return c.Login(user.Email, user.Password)
	})
}

// run composes the four stages into one pipeline: build the descriptor,
// execute it, validate the status, decode the payload. A later stage never
// begins before the prior stage's result is known, and the first failure is
// the pipeline's outcome.
func run[T any](c *Client, name string, build func() (httpclient.Request, error)) *pipeline.Pipeline[T] {
	return pipeline.New(name, func(ctx context.Context) (T, error) {
		var zero T
		req, err := build()
		if err != nil {
			return zero, err
		}
		res, err := c.transport.Execute(ctx, req)
		if err != nil {
			return zero, err
		}
		payload, err := httpclient.Validate(res)
		if err != nil {
			return zero, err
		}
		return codec.Decode[T](c.decoder, payload)
	})
}
