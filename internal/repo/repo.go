package repo

import (
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/pg"
	levelrepo "github.com/vitawin1906/vitawin-08-2025-sub000/internal/repo/level-repo"
	orderrepo "github.com/vitawin1906/vitawin-08-2025-sub000/internal/repo/order-repo"
	processinglogrepo "github.com/vitawin1906/vitawin-08-2025-sub000/internal/repo/processinglog-repo"
	referralrepo "github.com/vitawin1906/vitawin-08-2025-sub000/internal/repo/referral-repo"
	settingsrepo "github.com/vitawin1906/vitawin-08-2025-sub000/internal/repo/settings-repo"
	statusrepo "github.com/vitawin1906/vitawin-08-2025-sub000/internal/repo/status-repo"
	txlogrepo "github.com/vitawin1906/vitawin-08-2025-sub000/internal/repo/txlog-repo"
	userrepo "github.com/vitawin1906/vitawin-08-2025-sub000/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo          *userrepo.Repository
	OrderRepo         *orderrepo.Repository
	StatusRepo        *statusrepo.Repository
	ReferralRepo      *referralrepo.Repository
	TxLogRepo         *txlogrepo.Repository
	ProcessingLogRepo *processinglogrepo.Repository
	SettingsRepo      *settingsrepo.Repository
	LevelRepo         *levelrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:          userrepo.New(conn),
		OrderRepo:         orderrepo.New(conn, txManager),
		StatusRepo:        statusrepo.New(conn, txManager),
		ReferralRepo:      referralrepo.New(conn),
		TxLogRepo:         txlogrepo.New(conn),
		ProcessingLogRepo: processinglogrepo.New(conn),
		SettingsRepo:      settingsrepo.New(conn),
		LevelRepo:         levelrepo.New(conn),
	}
}
