package mailer

import (
  "context"
  "fmt"

  set "github.com/deckarep/golang-set/v2"
  "github.com/go-playground/validator/v10"
  "github.com/pricewise/pricewatch/internal/models"
  log "github.com/sirupsen/logrus"
  "gopkg.in/gomail.v2"
)

type Config struct {
  Host     string `validate:"required"`
  Port     int    `validate:"required"`
  User     string
  Password string
  From     string `validate:"required,email"`
}

func (c *Config) Validate() error {
  return validator.New().Struct(c)
}

type Client struct {
  config Config
  dialer *gomail.Dialer
}

func NewClient(config Config) (*Client, error) {
  if err := config.Validate(); err != nil {
    return nil, fmt.Errorf("invalid config: %w", err)
  }

  return &Client{
    config: config,
    dialer: gomail.NewDialer(config.Host, config.Port, config.User, config.Password),
  }, nil
}

// Send delivers the rendered content to the recipients. Duplicate
// addresses are collapsed before sending.
func (c *Client) Send(ctx context.Context, content models.EmailContent, recipients []string) error {
  if err := ctx.Err(); err != nil {
    return fmt.Errorf("ctx.Err: %w", err)
  }

  if len(recipients) == 0 {
    return fmt.Errorf("no recipients given")
  }

  unique := set.NewSet(recipients...).ToSlice()

  message := gomail.NewMessage()

  message.SetHeader("From", c.config.From)
  message.SetHeader("To", unique...)
  message.SetHeader("Subject", content.Subject)
  message.SetBody("text/html", content.Body)

  if err := c.dialer.DialAndSend(message); err != nil {
    return fmt.Errorf("c.dialer.DialAndSend: %w", err)
  }

  log.
    WithFields(log.Fields{
      "mail.subject":    content.Subject,
      "mail.sha256":     content.SHA256,
      "mail.recipients": len(unique),
    }).
    Info("email sent")

  return nil
}
