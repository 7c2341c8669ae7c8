package services

import (
	"context"

	"github.com/devansh/hostelhub/internal/db"
)

// Services defined in this package:
// - AuthService: Handles login and the authenticated profile
// - UserService: Handles admin-driven account creation and status changes
// - EnrollmentService: Admits students atomically (user + room + profile)
// - StudentService: Handles the student registry
// - RoomService: Handles room inventory management
// - HostelService: Handles hostel buildings
// - LeaveRequestService: Handles leave applications and decisions
// - DisciplinaryService: Handles disciplinary cases
// - IssueService: Handles maintenance issue tickets and their comments
// - PaymentService: Handles the payment ledger and its statistics
// - AnnouncementService: Handles notices

// TxManager runs a function inside a database transaction. Satisfied by
// *db.PostgresDB.
type TxManager interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}
