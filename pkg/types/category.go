package types

// CursorKind is the engine-native declaration-kind tag attached to a
// candidate. The values mirror libclang cursor kind names; tags outside
// this set are tolerated and map to CategoryUnknown.
type CursorKind string

const (
	CursorStructDecl         CursorKind = "StructDecl"
	CursorClassDecl          CursorKind = "ClassDecl"
	CursorClassTemplate      CursorKind = "ClassTemplate"
	CursorEnumDecl           CursorKind = "EnumDecl"
	CursorUnexposedDecl      CursorKind = "UnexposedDecl"
	CursorUnionDecl          CursorKind = "UnionDecl"
	CursorTypedefDecl        CursorKind = "TypedefDecl"
	CursorFieldDecl          CursorKind = "FieldDecl"
	CursorFunctionDecl       CursorKind = "FunctionDecl"
	CursorCXXMethod          CursorKind = "CXXMethod"
	CursorFunctionTemplate   CursorKind = "FunctionTemplate"
	CursorConversionFunction CursorKind = "ConversionFunction"
	CursorConstructor        CursorKind = "Constructor"
	CursorDestructor         CursorKind = "Destructor"
	CursorVarDecl            CursorKind = "VarDecl"
	CursorMacroDefinition    CursorKind = "MacroDefinition"
	CursorParmDecl           CursorKind = "ParmDecl"
	CursorNamespace          CursorKind = "Namespace"
	CursorNamespaceAlias     CursorKind = "NamespaceAlias"
)

// Category is the coarse display classification shown next to a candidate
// in the completion menu
type Category string

const (
	CategoryStruct    Category = "Struct"
	CategoryClass     Category = "Class"
	CategoryEnum      Category = "Enum"
	CategoryType      Category = "Type"
	CategoryMember    Category = "Member"
	CategoryFunction  Category = "Function"
	CategoryVariable  Category = "Variable"
	CategoryMacro     Category = "Macro"
	CategoryParameter Category = "Parameter"
	CategoryNamespace Category = "Namespace"
	CategoryUnknown   Category = "Unknown"
)

// categoryByCursorKind is the fixed many-to-one lookup from native
// declaration kinds to display categories.
var categoryByCursorKind = map[CursorKind]Category{
	CursorStructDecl: CategoryStruct,

	CursorClassDecl:     CategoryClass,
	CursorClassTemplate: CategoryClass,

	CursorEnumDecl: CategoryEnum,

	CursorUnexposedDecl: CategoryType,
	CursorUnionDecl:     CategoryType,
	CursorTypedefDecl:   CategoryType,

	CursorFieldDecl: CategoryMember,

	CursorFunctionDecl:       CategoryFunction,
	CursorCXXMethod:          CategoryFunction,
	CursorFunctionTemplate:   CategoryFunction,
	CursorConversionFunction: CategoryFunction,
	CursorConstructor:        CategoryFunction,
	CursorDestructor:         CategoryFunction,

	CursorVarDecl: CategoryVariable,

	CursorMacroDefinition: CategoryMacro,

	CursorParmDecl: CategoryParameter,

	CursorNamespace:      CategoryNamespace,
	CursorNamespaceAlias: CategoryNamespace,
}

// CategoryOf maps a native declaration kind to its display category.
// Unrecognized kinds map to CategoryUnknown.
func CategoryOf(kind CursorKind) Category {
	if cat, ok := categoryByCursorKind[kind]; ok {
		return cat
	}
	return CategoryUnknown
}

// ValidateCategory checks if the category is one of the enumerated values
func ValidateCategory(cat Category) error {
	switch cat {
	case CategoryStruct, CategoryClass, CategoryEnum, CategoryType,
		CategoryMember, CategoryFunction, CategoryVariable, CategoryMacro,
		CategoryParameter, CategoryNamespace, CategoryUnknown:
		return nil
	default:
		return ErrInvalidCategory
	}
}
