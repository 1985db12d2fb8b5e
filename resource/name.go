package resource

import "fmt"

// Name is a fully resolved resource name.
type Name struct {
	Package string `json:"package" yaml:"package"`
	Type    string `json:"type" yaml:"type"`
	Key     string `json:"key" yaml:"key"`
}

// FQDN formats the name the way generated R classes spell it:
// package.R.type.key.
func (n Name) FQDN() string {
	return fmt.Sprintf("%s.R.%s.%s", n.Package, n.Type, n.Key)
}

// XMLID formats the name as an XML resource reference:
// @package:type/key.
func (n Name) XMLID() string {
	return fmt.Sprintf("@%s:%s/%s", n.Package, n.Type, n.Key)
}

func (n Name) String() string {
	return n.FQDN()
}
