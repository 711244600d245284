package badgerstore

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"fleet-booking/internal/domain/resource"
	"fleet-booking/internal/infra"

	badger "github.com/dgraph-io/badger/v4"
)

type carRecord struct {
	ID           int64  `json:"car_id"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
}

type resourceRepository struct {
	txn   *badger.Txn
	store *Store
	lock  func(ctx context.Context, key string) error
}

func (r *resourceRepository) FindByID(_ context.Context, id int64) (*resource.Resource, error) {
	return r.load(carIDKey(id))
}

func (r *resourceRepository) FindByNaturalKey(_ context.Context, naturalKey string) (*resource.Resource, error) {
	item, err := r.txn.Get(carPlateKey(naturalKey))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by license plate", err)
	}

	var idKey []byte
	if err := item.Value(func(v []byte) error {
		id, perr := strconv.ParseInt(string(v), 10, 64)
		if perr != nil {
			return perr
		}
		idKey = carIDKey(id)
		return nil
	}); err != nil {
		return nil, infra.WrapRepoErr("corrupt license plate index", err)
	}
	return r.load(idKey)
}

func (r *resourceRepository) List(_ context.Context) ([]*resource.Resource, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = carIDPrefix
	it := r.txn.NewIterator(opts)
	defer it.Close()

	var result []*resource.Resource
	for it.Rewind(); it.Valid(); it.Next() {
		car, err := decodeCar(it.Item())
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode car", err)
		}
		result = append(result, car)
	}
	return result, nil
}

// ResolveOrCreate holds the plate lock until the transaction ends. Badger's
// conflict detection on the plate key covers writers in other processes.
func (r *resourceRepository) ResolveOrCreate(ctx context.Context, res *resource.Resource) (*resource.Resource, error) {
	if err := r.lock(ctx, plateLockKey(res.NaturalKey())); err != nil {
		return nil, infra.WrapRepoErr("failed to lock license plate", err)
	}

	existing, err := r.FindByNaturalKey(ctx, res.NaturalKey())
	if err == nil {
		return existing, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	id, err := r.store.nextCarID()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to allocate car id", err)
	}

	data, err := json.Marshal(carRecord{ID: id, Model: res.Label(), LicensePlate: res.NaturalKey()})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode car", err)
	}
	if err := r.txn.Set(carIDKey(id), data); err != nil {
		return nil, infra.WrapRepoErr("failed to create car", err)
	}
	if err := r.txn.Set(carPlateKey(res.NaturalKey()), []byte(strconv.FormatInt(id, 10))); err != nil {
		return nil, infra.WrapRepoErr("failed to index car license plate", err)
	}
	return res.Assign(id), nil
}

func (r *resourceRepository) load(key []byte) (*resource.Resource, error) {
	item, err := r.txn.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car", err)
	}
	car, err := decodeCar(item)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode car", err)
	}
	return car, nil
}

func decodeCar(item *badger.Item) (*resource.Resource, error) {
	var rec carRecord
	if err := item.Value(func(v []byte) error {
		return json.Unmarshal(v, &rec)
	}); err != nil {
		return nil, err
	}
	return resource.ReconstructResource(rec.ID, rec.Model, rec.LicensePlate), nil
}
