package mongodb

import (
  "context"
  "fmt"
  "net/http"

  "github.com/go-playground/validator/v10"
  "go.mongodb.org/mongo-driver/mongo"
  "go.mongodb.org/mongo-driver/mongo/options"
)

type Client struct {
  client *mongo.Client
}

type Config struct {
  Host           string `validate:"required"`
  Port           string `validate:"required"`
  Authentication *Authentication
}

type Authentication struct {
  User     string `validate:"required"`
  Password string `validate:"required"`
}

func (c *Config) Validate() error {
  return validator.New().Struct(c)
}

type Dependencies struct {
  Client *http.Client `validate:"required"`
}

func (c *Dependencies) Validate() error {
  return validator.New().Struct(c)
}

func (c *Config) ConnectionString() string {
  if c.Authentication != nil {
    return fmt.Sprintf("mongodb://%s:%s@%s:%s",
      c.Authentication.User, c.Authentication.Password,
      c.Host, c.Port)
  }
  return fmt.Sprintf("mongodb://%s:%s", c.Host, c.Port)
}

func NewClient(ctx context.Context, config Config, deps Dependencies) (*Client, error) {
  if err := deps.Validate(); err != nil {
    return nil, fmt.Errorf("invalid dependencies: %w", err)
  }
  if err := config.Validate(); err != nil {
    return nil, fmt.Errorf("invalid config: %w", err)
  }

  opts := options.
    Client().
    SetHTTPClient(deps.Client).
    ApplyURI(config.ConnectionString())

  client, err := mongo.Connect(ctx, opts)
  if err != nil {
    return nil, fmt.Errorf("mongo.Connect: %w", err)
  }

  if err = client.Ping(ctx, nil); err != nil {
    return nil, fmt.Errorf("client.Ping: %w", err)
  }

  return &Client{
    client: client,
  }, nil
}
