package entity

// CatalogKind identifies one of the five catalog attribute namespaces.
// All kinds share the same get-or-create semantics; they differ only in
// table and label column, which the repository maps from the kind.
type CatalogKind string

const (
	KindProduto   CatalogKind = "Produto"
	KindFormato   CatalogKind = "Formato"
	KindCor       CatalogKind = "Cor"
	KindAroma     CatalogKind = "Aroma"
	KindEmbalagem CatalogKind = "Embalagem"
)

// CatalogKinds lists every kind, in route-registration order.
var CatalogKinds = []CatalogKind{KindProduto, KindFormato, KindCor, KindAroma, KindEmbalagem}

func (k CatalogKind) String() string { return string(k) }
