// Package access decide qué puede hacer cada llamador sobre cada recurso.
//
// La decisión es una función pura de (llamador, recurso, acción, objetivo) y se resuelve con una tabla
// de reglas con nombre. Las reglas no se fusionan: "autenticado", "staff", "superusuario" y
// "dueño o superusuario" son casos distintos.
package access

// Resource tipo de recurso expuesto.
type Resource string

const (
	ResourceCategory   Resource = "category"
	ResourceProduct    Resource = "product"
	ResourceComplement Resource = "complement"
	ResourceOrder      Resource = "order"
	ResourceUser       Resource = "user"
)

// Action operación solicitada sobre un recurso.
type Action string

const (
	ActionList          Action = "list"
	ActionRetrieve      Action = "retrieve"
	ActionCreate        Action = "create"
	ActionUpdate        Action = "update"
	ActionPartialUpdate Action = "partial_update"
	ActionDestroy       Action = "destroy"
	// ActionComplements sub-acción de Product: complementos aplicables a un producto.
	ActionComplements Action = "complements"
)

// Rule regla de autorización con nombre.
type Rule int

const (
	RuleDeny Rule = iota
	RuleAnyone
	RuleAuthenticated
	RuleStaff
	RuleSuperuser
	RuleSelfOrSuperuser
)

func (r Rule) String() string {
	switch r {
	case RuleAnyone:
		return "anyone"
	case RuleAuthenticated:
		return "authenticated"
	case RuleStaff:
		return "staff"
	case RuleSuperuser:
		return "superuser"
	case RuleSelfOrSuperuser:
		return "self_or_superuser"
	default:
		return "deny"
	}
}

// Decision resultado de Authorize.
type Decision int

const (
	Allow Decision = iota
	// DenyUnauthenticated el llamador es anónimo y la regla exige identidad (HTTP 401).
	DenyUnauthenticated
	// DenyForbidden el llamador está autenticado pero no tiene permiso (HTTP 403).
	DenyForbidden
)

// Allowed indica si la decisión permite continuar.
func (d Decision) Allowed() bool { return d == Allow }

// Caller identidad que realiza la petición. El valor cero es un llamador anónimo.
type Caller struct {
	UserID        int64
	Authenticated bool
	IsStaff       bool
	IsSuperuser   bool
}

// Anonymous llamador sin identidad.
func Anonymous() Caller { return Caller{} }

// System llamador con privilegios de superusuario para operaciones fuera de HTTP (CLI).
func System() Caller { return Caller{Authenticated: true, IsStaff: true, IsSuperuser: true} }

// StaffPlus indica is_staff o is_superuser.
func (c Caller) StaffPlus() bool {
	return c.Authenticated && (c.IsStaff || c.IsSuperuser)
}

// Superuser indica un llamador autenticado con is_superuser.
func (c Caller) Superuser() bool {
	return c.Authenticated && c.IsSuperuser
}

// Target registro concreto sobre el que se decide (solo importa su dueño).
type Target struct {
	OwnerID int64
}

var catalogRules = map[Action]Rule{
	ActionList:          RuleAnyone,
	ActionRetrieve:      RuleAnyone,
	ActionCreate:        RuleStaff,
	ActionUpdate:        RuleStaff,
	ActionPartialUpdate: RuleStaff,
	ActionDestroy:       RuleStaff,
}

var table = map[Resource]map[Action]Rule{
	ResourceCategory: catalogRules,
	ResourceProduct: {
		ActionList:          RuleAnyone,
		ActionRetrieve:      RuleAnyone,
		ActionComplements:   RuleAnyone,
		ActionCreate:        RuleStaff,
		ActionUpdate:        RuleStaff,
		ActionPartialUpdate: RuleStaff,
		ActionDestroy:       RuleStaff,
	},
	ResourceComplement: catalogRules,
	ResourceOrder: {
		ActionList:          RuleStaff,
		ActionRetrieve:      RuleStaff,
		ActionCreate:        RuleAuthenticated,
		ActionUpdate:        RuleStaff,
		ActionPartialUpdate: RuleStaff,
		ActionDestroy:       RuleSuperuser,
	},
	ResourceUser: {
		ActionList:          RuleSuperuser,
		ActionRetrieve:      RuleSelfOrSuperuser,
		ActionCreate:        RuleAnyone,
		ActionUpdate:        RuleSelfOrSuperuser,
		ActionPartialUpdate: RuleSelfOrSuperuser,
		ActionDestroy:       RuleSuperuser,
	},
}

// RuleFor devuelve la regla configurada; RuleDeny si el par no existe.
func RuleFor(resource Resource, action Action) Rule {
	return table[resource][action]
}

// Authorize decide si caller puede ejecutar action sobre resource.
//
// target es opcional: con nil, RuleSelfOrSuperuser deja pasar (chequeo a nivel de colección) y el
// caso de uso vuelve a llamar con el registro cargado.
func Authorize(caller Caller, resource Resource, action Action, target *Target) Decision {
	if satisfies(RuleFor(resource, action), caller, target) {
		return Allow
	}
	if !caller.Authenticated {
		return DenyUnauthenticated
	}
	return DenyForbidden
}

func satisfies(rule Rule, c Caller, target *Target) bool {
	switch rule {
	case RuleAnyone:
		return true
	case RuleAuthenticated:
		return c.Authenticated
	case RuleStaff:
		return c.StaffPlus()
	case RuleSuperuser:
		return c.Superuser()
	case RuleSelfOrSuperuser:
		if target == nil {
			return true
		}
		return c.Superuser() || (c.Authenticated && c.UserID == target.OwnerID)
	default:
		return false
	}
}
