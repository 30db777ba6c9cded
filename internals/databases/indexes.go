package database

import (
	"log"

	"gorm.io/gorm"
)

// EnsureIndexes creates the constraints the application logic depends on.
// The partial unique index is the authoritative guard against two bookings
// racing into the same counseling slot; the controller-level availability
// check is only a fast path.
func EnsureIndexes(db *gorm.DB) {
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_appointments_active_slot
			ON appointments (appointment_date_time)
			WHERE appointment_status <> 'cancelled'`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_student
			ON appointments (appointment_student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_status_datetime
			ON appointments (appointment_status, appointment_date_time)`,
		`CREATE INDEX IF NOT EXISTS idx_referrals_teacher
			ON referrals (referral_teacher_id)`,
		`CREATE INDEX IF NOT EXISTS idx_student_appraisals_student
			ON student_appraisals (student_appraisal_student_id)`,
	}
	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			log.Printf("[ERROR] ensure index: %v", err)
		}
	}
}
