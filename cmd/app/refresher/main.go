package main

import (
  "context"
  "flag"
  "net/http"

  "github.com/go-resty/resty/v2"
  "github.com/pricewise/pricewatch/internal/app/refresher"
  "github.com/pricewise/pricewatch/internal/config"
  "github.com/pricewise/pricewatch/internal/deps/mailer"
  "github.com/pricewise/pricewatch/internal/deps/scrapers/amazon"
  "github.com/pricewise/pricewatch/internal/deps/storage/mongodb"
  "github.com/pricewise/pricewatch/internal/deps/storage/products"
  "github.com/pricewise/pricewatch/internal/deps/telegram"
  "github.com/pricewise/pricewatch/pkg/logger"
  "github.com/pricewise/pricewatch/pkg/parser/xpath"
  "github.com/robfig/cron/v3"
  log "github.com/sirupsen/logrus"
)

var runOnce bool

func main() {
  ctx := context.Background()

  logger.Init()
  config.Load()

  flag.BoolVar(&runOnce, "once", false, "run a single refresh and exit")
  flag.Parse()

  var auth *mongodb.Authentication

  if user := config.Get(ctx, config.MongodbUser); !user.IsEmpty() {
    auth = &mongodb.Authentication{
      User:     user.String(),
      Password: config.Get(ctx, config.MongodbPassword).String(),
    }
  }

  mongoClient, err := mongodb.NewClient(ctx,
    mongodb.Config{
      Host:           config.Get(ctx, config.MongodbHost).String(),
      Port:           config.Get(ctx, config.MongodbPort).String(),
      Authentication: auth,
    },
    mongodb.Dependencies{
      Client: http.DefaultClient,
    })
  if err != nil {
    log.Fatalf("mongodb.NewClient: %v", err)
  }
  log.Info("mongodb connected successfully")

  store := products.NewStore(products.Dependencies{
    Mongodb: mongoClient,
  })

  xpathParser := xpath.NewParser(xpath.Dependencies{
    Client: resty.NewWithClient(http.DefaultClient),
  })

  amazonScraper := amazon.NewParser(amazon.Dependencies{
    Xpath: xpathParser,
  })

  mailClient, err := mailer.NewClient(mailer.Config{
    Host:     config.Get(ctx, config.SmtpHost).String(),
    Port:     config.Get(ctx, config.SmtpPort).Int(),
    User:     config.Get(ctx, config.SmtpUser).String(),
    Password: config.Get(ctx, config.SmtpPassword).String(),
    From:     config.Get(ctx, config.SmtpFrom).String(),
  })
  if err != nil {
    log.Fatalf("mailer.NewClient: %v", err)
  }

  var opsNotifier *telegram.Notifier

  if token := config.Get(ctx, config.TelegramToken); !token.IsEmpty() {
    opsNotifier, err = telegram.NewNotifier(telegram.Config{
      Token:  token.String(),
      ChatId: config.Get(ctx, config.TelegramChatId).Int64(),
    })
    if err != nil {
      log.Fatalf("telegram.NewNotifier: %v", err)
    }
  }

  refreshJob := refresher.NewRefresher(refresher.Dependencies{
    Storage: store,
    Scraper: amazonScraper,
    Mailer:  mailClient,
  })

  run := func() {
    summary, err := refreshJob.Run(ctx)
    if err != nil {
      log.Errorf("refreshJob.Run: %v", err)
      return
    }

    if opsNotifier == nil {
      return
    }
    if err = opsNotifier.NotifyRunSummary(ctx, *summary); err != nil {
      log.Errorf("opsNotifier.NotifyRunSummary: %v", err)
    }
  }

  if runOnce {
    run()
    return
  }

  schedule := config.Get(ctx, config.CronSchedule).String()

  scheduler := cron.New()

  if _, err = scheduler.AddFunc(schedule, run); err != nil {
    log.Fatalf("scheduler.AddFunc: %v", err)
  }
  scheduler.Start()

  log.
    WithField("cron.schedule", schedule).
    Info("refresh schedule registered")

  addr := config.Get(ctx, config.HttpAddr).String()

  log.
    WithField("http.addr", addr).
    Info("refresh trigger listening")

  if err = http.ListenAndServe(addr, refreshJob.Handler()); err != nil {
    log.Fatalf("http.ListenAndServe: %v", err)
  }
}
