package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	StudentRepository      *StudentRepository
	RoomRepository         *RoomRepository
	HostelRepository       *HostelRepository
	LeaveRequestRepository *LeaveRequestRepository
	DisciplinaryRepository *DisciplinaryRepository
	IssueRepository        *IssueRepository
	IssueCommentRepository *IssueCommentRepository
	PaymentRepository      *PaymentRepository
	AnnouncementRepository *AnnouncementRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		StudentRepository:      NewStudentRepository(db),
		RoomRepository:         NewRoomRepository(db),
		HostelRepository:       NewHostelRepository(db),
		LeaveRequestRepository: NewLeaveRequestRepository(db),
		DisciplinaryRepository: NewDisciplinaryRepository(db),
		IssueRepository:        NewIssueRepository(db),
		IssueCommentRepository: NewIssueCommentRepository(db),
		PaymentRepository:      NewPaymentRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
	}
}
