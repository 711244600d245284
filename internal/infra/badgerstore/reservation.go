package badgerstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"fleet-booking/internal/domain/reservation"
	"fleet-booking/internal/infra"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type reservationRecord struct {
	ID        uuid.UUID `json:"reservation_id"`
	CarID     int64     `json:"car_id"`
	UserID    string    `json:"user_id"`
	Start     time.Time `json:"reservation_date"`
	CreatedAt time.Time `json:"created_at"`
}

type reservationRepository struct {
	txn *badger.Txn
}

func (r *reservationRepository) ListBetween(_ context.Context, resourceID int64, from, to time.Time) ([]*reservation.Reservation, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = reservationPrefix(resourceID)
	it := r.txn.NewIterator(opts)
	defer it.Close()

	end := reservationSeekKey(resourceID, to)
	var result []*reservation.Reservation
	for it.Seek(reservationSeekKey(resourceID, from)); it.Valid(); it.Next() {
		item := it.Item()
		if bytes.Compare(item.Key(), end) >= 0 {
			break
		}

		var rec reservationRecord
		if err := item.Value(func(v []byte) error {
			return json.Unmarshal(v, &rec)
		}); err != nil {
			return nil, infra.WrapRepoErr("failed to decode reservation", err)
		}
		result = append(result, reservation.ReconstructReservation(rec.ID, rec.CarID, rec.UserID, rec.Start, rec.CreatedAt))
	}
	return result, nil
}

func (r *reservationRepository) Create(_ context.Context, res *reservation.Reservation) error {
	if _, err := r.txn.Get(carIDKey(res.ResourceID())); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return infra.WrapRepoErr("car does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to check car", err)
	}

	data, err := json.Marshal(reservationRecord{
		ID:        res.ID(),
		CarID:     res.ResourceID(),
		UserID:    res.PrincipalID(),
		Start:     res.Start(),
		CreatedAt: res.CreatedAt(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to encode reservation", err)
	}

	if err := r.txn.Set(reservationKey(res.ResourceID(), res.Start(), res.ID().String()), data); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}
