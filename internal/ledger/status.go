package ledger

import "github.com/mmynk/soltracker/internal/models"

// Pause stops an active Sol from accepting payments and payouts.
func (l *Ledger) Pause(sol *models.Sol) (*models.Sol, error) {
	if sol.Status != models.StatusActive {
		return nil, &NotActiveError{SolID: sol.ID, Status: sol.Status}
	}
	next := sol.Clone()
	next.Status = models.StatusPaused
	return next, nil
}

// Resume reactivates a paused Sol. Completed Sols stay completed.
func (l *Ledger) Resume(sol *models.Sol) (*models.Sol, error) {
	if sol.Status != models.StatusPaused {
		return nil, &ValidationError{Field: "status", Reason: "only paused sols can be resumed, sol is " + string(sol.Status)}
	}
	next := sol.Clone()
	next.Status = models.StatusActive
	return next, nil
}
