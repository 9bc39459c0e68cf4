package remotestate

import (
	"github.com/m04kA/TMS-AdminService/internal/domain"
	"github.com/m04kA/TMS-AdminService/internal/infra/querycache"
)

// Mutation - тип мутации над сущностью бэкенда
type Mutation string

const (
	MutationCreate Mutation = "create"
	MutationUpdate Mutation = "update"
	MutationDelete Mutation = "delete"
)

// InvalidationTargets возвращает префиксы ключей кеша, которые мутация делает устаревшими.
// Create и Update устаревают только списки: деталь после Update перезаписывается
// напрямую через Put. Delete устаревает всё по сущности, включая детали.
func InvalidationTargets(entity domain.EntityType, mutation Mutation) []string {
	switch mutation {
	case MutationCreate, MutationUpdate:
		return []string{querycache.ListPrefix(entity)}
	case MutationDelete:
		return []string{querycache.EntityPrefix(entity)}
	default:
		return nil
	}
}
