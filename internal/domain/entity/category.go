package entity

// Category representa una categoría de productos. El modelo soporta un solo
// nivel de anidamiento: una categoría es raíz (ParentID == 0) o hija directa
// de una raíz; nunca se consulta el padre del padre.
type Category struct {
	ID       int64
	Name     string
	ParentID int64 // 0 si es raíz
}

// IsRoot indica si la categoría no tiene padre.
func (c Category) IsRoot() bool { return c.ParentID == 0 }
