package catalogrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/catalog"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) StatusExists(ctx context.Context, id kernel.UUID) (bool, error) {
	return r.exists(ctx, &StatusDTO{}, "id = ?", id.Bytes())
}

// StatusNameExists matches the name exactly, including case.
func (r *GormCatalogRepository) StatusNameExists(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, &StatusDTO{}, "name = ?", name)
}

func (r *GormCatalogRepository) ProductExists(ctx context.Context, id kernel.UUID) (bool, error) {
	return r.exists(ctx, &ProductDTO{}, "id = ?", id.Bytes())
}

func (r *GormCatalogRepository) ServiceExists(ctx context.Context, id kernel.UUID) (bool, error) {
	return r.exists(ctx, &ServiceDTO{}, "id = ?", id.Bytes())
}

// GetStatusByName retrieves a status by its unique name.
func (r *GormCatalogRepository) GetStatusByName(ctx context.Context, name string) (*catalog.Status, error) {
	var dto StatusDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("status name", name)
		}
		return nil, err
	}

	return statusToDomain(dto)
}

func (r *GormCatalogRepository) GetStatuses(ctx context.Context) ([]*catalog.Status, error) {
	var dtos []StatusDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	statuses := make([]*catalog.Status, 0, len(dtos))
	for _, dto := range dtos {
		s, err := statusToDomain(dto)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}

	return statuses, nil
}

// GetProducts retrieves the products among ids. Unknown ids are skipped.
func (r *GormCatalogRepository) GetProducts(ctx context.Context, ids []kernel.UUID) ([]*catalog.Product, error) {
	if len(ids) == 0 {
		return []*catalog.Product{}, nil
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", rawIDs(ids)).Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*catalog.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := productToDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// GetServices retrieves the services among ids. Unknown ids are skipped.
func (r *GormCatalogRepository) GetServices(ctx context.Context, ids []kernel.UUID) ([]*catalog.Service, error) {
	if len(ids) == 0 {
		return []*catalog.Service{}, nil
	}

	var dtos []ServiceDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", rawIDs(ids)).Find(&dtos).Error; err != nil {
		return nil, err
	}

	services := make([]*catalog.Service, 0, len(dtos))
	for _, dto := range dtos {
		s, err := serviceToDomain(dto)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}

	return services, nil
}

// EnsureStatuses inserts a status for every name not stored yet.
func (r *GormCatalogRepository) EnsureStatuses(ctx context.Context, names []string) error {
	for _, name := range names {
		dto := StatusDTO{ID: uuid.New(), Name: name}
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(&dto).Error; err != nil {
			return err
		}
	}

	return nil
}

func (r *GormCatalogRepository) exists(ctx context.Context, model any, query string, arg any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(model).Where(query, arg).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
