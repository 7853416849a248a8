package scanmodel

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

const scanCollection = "scan_log"

// ScanRecord is one attendance-scanner hit, kept as a flexible document so
// the admin dashboard can slice scan history without schema migrations.
type ScanRecord struct {
	ID        string    `bson:"_id" json:"id"`
	MemberID  string    `bson:"member_id,omitempty" json:"member_id,omitempty"`
	TeamID    string    `bson:"team_id,omitempty" json:"team_id,omitempty"`
	TeamCode  string    `bson:"team_code" json:"team_code"`
	Email     string    `bson:"email" json:"email"`
	Result    string    `bson:"result" json:"result"`
	CheckedIn bool      `bson:"checked_in" json:"checked_in"`
	ScannedAt time.Time `bson:"scanned_at" json:"scanned_at"`
}

const (
	ScanResultVerified  = "verified"
	ScanResultUnmatched = "unmatched"
)

// ScanLogRepository persists scan records in MongoDB.
type ScanLogRepository struct {
	db *mongo.Database
}

// NewScanLogRepository creates a new scan log repository with injected dependencies
func NewScanLogRepository(db *mongo.Database) *ScanLogRepository {
	return &ScanLogRepository{db: db}
}

// Record inserts one scan document. A nil database (scan logging not
// configured) is a no-op, not an error.
func (r *ScanLogRepository) Record(record *ScanRecord) error {
	if r.db == nil {
		return nil
	}

	record.ID = uuid.New().String()
	record.ScannedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, insertErr := r.db.Collection(scanCollection).InsertOne(ctx, record)
	if insertErr != nil {
		slog.Error("ScanLog Record insert failed", "error", insertErr, "team_code", record.TeamCode, "email", record.Email)
		return insertErr
	}

	return nil
}
