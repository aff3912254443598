// Package rbac maps the closed set of hub roles to explicit capability sets.
// The mapping is declarative and resolved once at login; nothing downstream
// compares role strings ad hoc.
package rbac

import (
	"fmt"
	"strings"
)

// Role is one of the closed role enumeration.
type Role string

const (
	// RoleAdmin has every capability.
	RoleAdmin Role = "admin"
	// RoleManager runs inventory, purchasing and reports.
	RoleManager Role = "manager"
	// RoleSupplier sees its purchase orders and performance figures.
	RoleSupplier Role = "supplier"
	// RoleUser is the baseline employee role.
	RoleUser Role = "user"
)

// Capabilities gating route groups and menu entries.
const (
	CapInventoryView = "inventory.view"
	CapInventoryEdit = "inventory.edit"
	CapPurchaseView  = "purchase.view"
	CapReportsView   = "reports.view"
	CapSuppliersView = "suppliers.view"
	CapSalesView     = "sales.view"
	CapExpensesView  = "expenses.view"
	CapExpensesEdit  = "expenses.edit"
	CapUsersManage   = "users.manage"
)

// roleCapabilities is the single source of truth for role visibility.
var roleCapabilities = map[Role][]string{
	RoleAdmin: {
		CapInventoryView, CapInventoryEdit,
		CapPurchaseView, CapReportsView, CapSuppliersView,
		CapSalesView, CapExpensesView, CapExpensesEdit,
		CapUsersManage,
	},
	RoleManager: {
		CapInventoryView, CapInventoryEdit,
		CapPurchaseView, CapReportsView, CapSuppliersView,
		CapSalesView, CapExpensesView, CapExpensesEdit,
	},
	RoleSupplier: {
		CapPurchaseView, CapSuppliersView,
	},
	RoleUser: {
		CapInventoryView, CapPurchaseView, CapSalesView, CapReportsView,
	},
}

// ParseRole validates a role string against the closed enumeration.
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := roleCapabilities[role]; !ok {
		return "", fmt.Errorf("rbac: unknown role %q", s)
	}
	return role, nil
}

// Capabilities returns a copy of the capability set for the role. Unknown
// roles get no capabilities.
func Capabilities(role Role) []string {
	caps, ok := roleCapabilities[role]
	if !ok {
		return nil
	}
	out := make([]string, len(caps))
	copy(out, caps)
	return out
}

// Roles lists the closed enumeration, admin first.
func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleSupplier, RoleUser}
}
