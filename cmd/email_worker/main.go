package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/config"
	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/pkg/mailer"
	mailtpl "github.com/ShaikAbbuSofiyan/health-sign-up-oasis/pkg/mailer/templates"
)

func main() {
	cfg := config.Load()
	if !cfg.MailSendEnabled {
		log.Println("MAIL_SEND_ENABLED=false; email worker disabled (no real emails will be sent)")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQWelcomeQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		log.Fatal("Mailgun not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQWelcomeQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQWelcomeQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var job mailer.EmailJob
			if err := json.Unmarshal(msg.Body, &job); err != nil {
				log.Printf("bad message: %v", err)
				_ = msg.Nack(false, false)
				continue
			}

			subject, text, html := job.Subject, job.Text, job.HTML
			if job.Template != "" {
				s, t, h, rErr := mailtpl.Render(job.Template, job.Data)
				if rErr != nil {
					log.Printf("render %q: %v", job.Template, rErr)
					_ = msg.Nack(false, false)
					continue
				}
				subject, text, html = s, t, h
			}

			if err := mg.Send(ctx, job.To, subject, text, html); err != nil {
				log.Printf("send to %s: %v", job.To, err)
				// Requeue once; the broker drops redelivered failures.
				_ = msg.Nack(false, !msg.Redelivered)
				continue
			}
			_ = msg.Ack(false)
		}
		close(done)
	}()

	log.Printf("email worker consuming %q", cfg.RabbitMQWelcomeQueue)
	select {
	case <-stop:
		log.Println("shutting down email worker")
		_ = ch.Close()
		<-done
	case <-done:
	}
}
