// Package patients maps raw remote records onto the dashboard's patient
// shape and serves them through a cached repository.
package patients

import (
	"strings"

	"github.com/lumenmd/lead-dashboard/internal/plan"
	"github.com/lumenmd/lead-dashboard/internal/records"
)

// Record field names in the remote base.
const (
	FieldName     = "Name"
	FieldEmail    = "Email"
	FieldPhone    = "Phone"
	FieldStatus   = "Status"
	FieldFindings = "Assessment Findings"
)

// Patient is a prospective aesthetic-treatment patient record.
type Patient struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Status   string      `json:"status"`
	Findings []string    `json:"findings"`
	Plan     []plan.Item `json:"plan"`

	// PlanRaw is the undecoded plan field, kept so the plan store can
	// hydrate from exactly what was loaded.
	PlanRaw string `json:"-"`
}

// FromRecord maps a remote record onto a Patient. The findings field may be
// a flat list or a comma-joined string depending on the analysis pipeline
// that wrote it; both decode to the same list.
func FromRecord(rec *records.Record) *Patient {
	p := &Patient{
		ID:     rec.ID,
		Name:   rec.StringField(FieldName),
		Email:  rec.StringField(FieldEmail),
		Phone:  rec.StringField(FieldPhone),
		Status: rec.StringField(FieldStatus),
	}
	p.Findings = decodeFindings(rec.Fields[FieldFindings])
	p.PlanRaw = rec.StringField(plan.PlanField)
	p.Plan = plan.Decode(rec.ID, p.PlanRaw)
	return p
}

func decodeFindings(value any) []string {
	var out []string
	switch v := value.(type) {
	case string:
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
	}
	return out
}
