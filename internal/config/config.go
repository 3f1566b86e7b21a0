package config

import (
  "context"
  "os"

  "github.com/joho/godotenv"
  log "github.com/sirupsen/logrus"
  "github.com/spf13/cast"
)

type Key = string

const (
  MongodbHost     Key = "MONGODB_HOST"
  MongodbPort     Key = "MONGODB_PORT"
  MongodbUser     Key = "MONGODB_USER"
  MongodbPassword Key = "MONGODB_PASSWORD"

  SmtpHost     Key = "SMTP_HOST"
  SmtpPort     Key = "SMTP_PORT"
  SmtpUser     Key = "SMTP_USER"
  SmtpPassword Key = "SMTP_PASSWORD"
  SmtpFrom     Key = "SMTP_FROM"

  TelegramToken  Key = "TELEGRAM_TOKEN"
  TelegramChatId Key = "TELEGRAM_CHAT_ID"

  HttpAddr     Key = "HTTP_ADDR"
  CronSchedule Key = "CRON_SCHEDULE"
)

var defaults = map[Key]string{
  MongodbHost:  "localhost",
  MongodbPort:  "27017",
  SmtpPort:     "587",
  HttpAddr:     ":8080",
  CronSchedule: "0 */6 * * *",
}

// Load reads a local .env file if present. Missing file is fine,
// process environment always wins.
func Load() {
  if err := godotenv.Load(); err != nil {
    log.Debugf("config: godotenv.Load: %v", err)
  }
}

type Value struct {
  raw string
}

func Get(_ context.Context, key Key) Value {
  raw := os.Getenv(key)

  if raw == "" {
    raw = defaults[key]
  }

  return Value{raw: raw}
}

func (v Value) String() string {
  return v.raw
}

func (v Value) Int() int {
  return cast.ToInt(v.raw)
}

func (v Value) Int64() int64 {
  return cast.ToInt64(v.raw)
}

func (v Value) IsEmpty() bool {
  return v.raw == ""
}
