// Command seed fills the local database with demo appointments so the API
// has something to show in development. Never run against production.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/leadwise-ai/scheduling-platform/internal/appointments"
	appconfig "github.com/leadwise-ai/scheduling-platform/internal/config"
	"github.com/leadwise-ai/scheduling-platform/internal/db"
)

func main() {
	count := flag.Int("count", 20, "number of demo appointments to create")
	flag.Parse()

	_ = godotenv.Load()
	cfg := appconfig.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	statuses := []appointments.Status{
		appointments.StatusUpcoming,
		appointments.StatusSuccess,
		appointments.StatusNoShow,
		appointments.StatusCancelled,
		appointments.StatusRescheduled,
	}
	providers := []string{"cal", "highlevel"}

	businessID := uuid.NewString()
	for i := 0; i < *count; i++ {
		apptID := uuid.New()
		meetingID := gofakeit.LetterN(12)
		leadID := uuid.NewString()
		status := statuses[gofakeit.Number(0, len(statuses)-1)]
		providerName := providers[gofakeit.Number(0, 1)]
		start := time.Now().UTC().Add(time.Duration(gofakeit.Number(-72, 240)) * time.Hour).Truncate(30 * time.Minute)

		source := appointments.SourcePlatform
		if gofakeit.Bool() {
			source = appointments.SourceOutside
		}

		if _, err := pool.Exec(ctx, `
			INSERT INTO appointments (id, meeting_id, business_id, agency_id, lead_id, status, start_time, provider, source, meeting_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (meeting_id) DO NOTHING
		`, apptID, meetingID, businessID, uuid.NewString(), leadID, string(status), start, providerName, string(source), gofakeit.URL()); err != nil {
			log.Fatalf("insert appointment: %v", err)
		}

		input, _ := json.Marshal(map[string]string{
			"lead_id":   leadID,
			"date_time": start.Format(time.RFC3339),
		})
		output, _ := json.Marshal(map[string]string{
			"meeting_id": meetingID,
			"attendee":   gofakeit.Name(),
		})
		if _, err := pool.Exec(ctx, `
			INSERT INTO conversation_logs (id, conversation_id, action, input, output)
			VALUES ($1, $2, $3, $4, $5)
		`, uuid.New(), uuid.NewString(), appointments.ActionAppointmentBooked, input, output); err != nil {
			log.Fatalf("insert conversation log: %v", err)
		}
	}

	log.Printf("seeded %d appointments for business %s", *count, businessID)
}
