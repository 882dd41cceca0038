// services/reminder_service.go
package services

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"invoicegen-backend/models"
	"invoicegen-backend/utils"
)

// ReminderService sends a payment reminder when the invoice due date is
// getting close. It is inert unless Twilio credentials are configured.
type ReminderService struct {
	db         *gorm.DB
	store      SnapshotStore
	client     *twilio.RestClient
	daysBefore int
}

func NewReminderService(db *gorm.DB, store SnapshotStore) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	daysBefore := 3
	if env := os.Getenv("REMINDER_DAYS_BEFORE"); env != "" {
		if d, err := strconv.Atoi(env); err == nil {
			daysBefore = d
		}
	}

	s := &ReminderService{
		db:         db,
		store:      store,
		daysBefore: daysBefore,
	}
	if accountSid != "" && authToken != "" {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}
	return s
}

func (s *ReminderService) StartScheduler() {
	if s.client == nil {
		utils.Logger.Info("reminder scheduler disabled: Twilio not configured")
		return
	}

	c := cron.New()
	if _, err := c.AddFunc("0 9 * * *", func() { s.Run(context.Background()) }); err != nil {
		utils.Logger.Errorw("failed to schedule reminders", "error", err)
		return
	}
	c.Start()
	utils.Logger.Info("reminder scheduler started")
}

// Run checks the current invoice once and sends a reminder if it is due
// within the configured window.
func (s *ReminderService) Run(ctx context.Context) {
	if s.client == nil {
		return
	}

	body, found, err := s.store.Load(ctx, models.SnapshotKey)
	if err != nil {
		utils.Logger.Errorw("reminder: failed to load snapshot", "error", err)
		return
	}
	if !found {
		return
	}

	inv, err := models.Deserialize([]byte(body))
	if err != nil {
		utils.Logger.Warnw("reminder: stored snapshot is invalid", "error", err)
		return
	}

	phone := strings.TrimSpace(inv.Recipient.Phone)
	if phone == "" {
		return
	}

	due := utils.ParseDateOrNow(inv.DueDate())
	days := utils.DaysBetween(time.Now(), due)
	if days < 0 || days > s.daysBefore {
		return
	}

	message := fmt.Sprintf("Reminder: invoice %s for %s is due on %s.",
		inv.FullNumber(), utils.FormatMoney(inv.GrandTotal(), inv.Currency), inv.DueDate())

	// WhatsApp for E.164 numbers, plain SMS otherwise.
	channel := "sms"
	to := phone
	params := &twilioApi.CreateMessageParams{}
	if strings.HasPrefix(phone, "+") {
		to = "whatsapp:" + phone
		channel = "whatsapp"
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}
	params.SetTo(to)
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""
	if err != nil {
		utils.Logger.Errorw("reminder: send failed", "to", phone, "error", err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		utils.Logger.Infow("reminder sent", "to", phone, "sid", *resp.Sid)
	}

	log := models.ReminderLog{
		InvoiceNumber: inv.FullNumber(),
		DueDate:       inv.DueDate(),
		Recipient:     phone,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		Channel:       channel,
		SentAt:        time.Now(),
	}
	if err := s.db.Create(&log).Error; err != nil {
		utils.Logger.Errorw("reminder: failed to log", "error", err)
	}
}
