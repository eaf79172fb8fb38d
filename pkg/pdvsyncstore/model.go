package pdvsyncstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/pdv3/hybrid-backend/pkg/pdvsync"
)

// StatusDao is a data access object that maps directly to the 'pdv_sync_status' table in PostgreSQL.
type StatusDao struct {
	bun.BaseModel     `bun:"table:pdv_sync_status,alias:ps"`
	ID                int64     `bun:"id,pk,autoincrement"`
	PdvID             string    `bun:"pdv_id,unique,notnull,type:varchar(80)"`
	Status            string    `bun:"status,notnull,type:varchar(30)"`
	TotalEnviadas     int64     `bun:"total_enviadas,notnull"`
	TotalRecebidas    int64     `bun:"total_recebidas,notnull"`
	PendingSalesLocal int64     `bun:"pending_sales_local,notnull"`
	Errors            []string  `bun:"errors,array,notnull,type:text[]"`
	StartedAt         *string   `bun:"started_at,type:text"`
	FinishedAt        *string   `bun:"finished_at,type:text"`
	AppVersion        *string   `bun:"app_version,type:text"`
	DeviceName        *string   `bun:"device_name,type:text"`
	LastSeenAt        time.Time `bun:"last_seen_at,notnull,type:timestamptz"`
}

// toStatusDao converts a pdvsync.Status to StatusDao.
func toStatusDao(st *pdvsync.Status) *StatusDao {
	errs := st.Errors
	if errs == nil {
		errs = []string{}
	}

	return &StatusDao{
		PdvID:             st.PdvID,
		Status:            st.Status,
		TotalEnviadas:     st.TotalEnviadas,
		TotalRecebidas:    st.TotalRecebidas,
		PendingSalesLocal: st.PendingSalesLocal,
		Errors:            errs,
		StartedAt:         st.StartedAt,
		FinishedAt:        st.FinishedAt,
		AppVersion:        st.AppVersion,
		DeviceName:        st.DeviceName,
		LastSeenAt:        st.LastSeenAt.UTC(),
	}
}

// toStatus converts a StatusDao to pdvsync.Status.
func toStatus(dao *StatusDao) *pdvsync.Status {
	errs := dao.Errors
	if errs == nil {
		errs = []string{}
	}

	return &pdvsync.Status{
		PdvID:             dao.PdvID,
		Status:            dao.Status,
		TotalEnviadas:     dao.TotalEnviadas,
		TotalRecebidas:    dao.TotalRecebidas,
		PendingSalesLocal: dao.PendingSalesLocal,
		Errors:            errs,
		StartedAt:         dao.StartedAt,
		FinishedAt:        dao.FinishedAt,
		AppVersion:        dao.AppVersion,
		DeviceName:        dao.DeviceName,
		LastSeenAt:        dao.LastSeenAt.UTC(),
	}
}
