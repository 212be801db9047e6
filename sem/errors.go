package sem

import "fmt"

// Error is the interface of all semantic analysis errors.  Errors accumulate
// during analysis instead of aborting it; a module is valid exactly when its
// accumulated error list is empty.
type Error interface {
	error
	semError()
}

// UndefinedComponentError indicates a reference to a component that is never
// declared.
type UndefinedComponentError struct {
	Name string
}

func (e *UndefinedComponentError) Error() string {
	return fmt.Sprintf("Undefined component '%s'", e.Name)
}

func (e *UndefinedComponentError) semError() {}

// UndefinedVariableError indicates a reference to a name bound in no
// enclosing scope.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'", e.Name)
}

func (e *UndefinedVariableError) semError() {}

// UndefinedFunctionError indicates a call to a function that is neither
// declared nor built in.
type UndefinedFunctionError struct {
	Name string
}

func (e *UndefinedFunctionError) Error() string {
	return fmt.Sprintf("Undefined function '%s'", e.Name)
}

func (e *UndefinedFunctionError) semError() {}

// UndefinedEventError indicates a reference to an undeclared event.  Events
// carry no declarations yet, so nothing raises this today.
type UndefinedEventError struct {
	Name string
}

func (e *UndefinedEventError) Error() string {
	return fmt.Sprintf("Undefined event '%s'", e.Name)
}

func (e *UndefinedEventError) semError() {}

// TypeMismatchError indicates a value of the wrong type.  Reserved: the
// current typing rules degrade to Unknown instead of raising it.
type TypeMismatchError struct {
	Expected string
	Found    string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("Type mismatch: expected %s, found %s", e.Expected, e.Found)
}

func (e *TypeMismatchError) semError() {}

// DuplicateDefinitionError indicates two definitions of the same name.
// Reserved: collection currently lets later definitions shadow earlier ones.
type DuplicateDefinitionError struct {
	Name string
}

func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("Duplicate definition of '%s'", e.Name)
}

func (e *DuplicateDefinitionError) semError() {}

// InvalidAssignmentTargetError indicates an assignment whose left side is not
// a place expression.  Reserved.
type InvalidAssignmentTargetError struct{}

func (e *InvalidAssignmentTargetError) Error() string {
	return "Invalid assignment target"
}

func (e *InvalidAssignmentTargetError) semError() {}

// BCLWriteViolationError indicates a state mutation inside a choice function.
// Reserved.
type BCLWriteViolationError struct{}

func (e *BCLWriteViolationError) Error() string {
	return "Cannot modify state in BCL (choice function)"
}

func (e *BCLWriteViolationError) semError() {}

// FieldNotFoundError indicates access to a field a component does not
// declare.  Reserved: field access is intentionally lenient and degrades to
// Unknown.
type FieldNotFoundError struct {
	Component string
	Field     string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("Field '%s' not found in component '%s'", e.Field, e.Component)
}

func (e *FieldNotFoundError) semError() {}
