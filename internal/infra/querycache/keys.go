package querycache

import "github.com/m04kA/TMS-AdminService/internal/domain"

// Kind вид кешируемого запроса: список или отдельная сущность
type Kind string

const (
	KindList   Kind = "list"
	KindDetail Kind = "detail"
)

// Key ключ кеша: (тип сущности, вид запроса, параметры)
// Для списков Param — каноничная строка фильтра, для detail — ID сущности
type Key struct {
	Entity domain.EntityType
	Kind   Kind
	Param  string
}

// ListKey строит ключ списочного запроса
func ListKey(entity domain.EntityType, filterQuery string) Key {
	return Key{Entity: entity, Kind: KindList, Param: filterQuery}
}

// DetailKey строит ключ запроса отдельной сущности
func DetailKey(entity domain.EntityType, id string) Key {
	return Key{Entity: entity, Kind: KindDetail, Param: id}
}

// String возвращает строковое представление ключа
func (k Key) String() string {
	return string(k.Entity) + "/" + string(k.Kind) + "/" + k.Param
}

// ListPrefix префикс, покрывающий все списочные запросы сущности
func ListPrefix(entity domain.EntityType) string {
	return string(entity) + "/" + string(KindList) + "/"
}

// EntityPrefix префикс, покрывающий все кешированные запросы сущности
func EntityPrefix(entity domain.EntityType) string {
	return string(entity) + "/"
}
