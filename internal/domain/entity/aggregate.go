package entity

// AggregateKind identifies a variant of the closed Aggregate set
type AggregateKind string

const (
	// KindUser identifies the User aggregate
	KindUser AggregateKind = "user"
	// KindShop identifies the Shop aggregate
	KindShop AggregateKind = "shop"
	// KindOrder identifies the Order aggregate
	KindOrder AggregateKind = "order"
)

// String returns the kind name
func (k AggregateKind) String() string {
	return string(k)
}

// Operation enumerates the persistence operations a command can stage
type Operation string

const (
	// OperationCreate inserts a new aggregate
	OperationCreate Operation = "create"
	// OperationUpdate updates an existing aggregate
	OperationUpdate Operation = "update"
	// OperationDelete removes an existing aggregate
	OperationDelete Operation = "delete"
)

// String returns the operation name
func (op Operation) String() string {
	return string(op)
}

// Aggregate is the closed set of domain aggregates a unit of work can
// coordinate. The unexported marker keeps the set sealed: extending it means
// adding a new entity in this package plus a dispatch entry in the
// command-staging coordinator
type Aggregate interface {
	Kind() AggregateKind
	isAggregate()
}

// Kind identifies User as an aggregate variant
func (u *User) Kind() AggregateKind { return KindUser }

func (u *User) isAggregate() {}

// Kind identifies Shop as an aggregate variant
func (s *Shop) Kind() AggregateKind { return KindShop }

func (s *Shop) isAggregate() {}

// Kind identifies Order as an aggregate variant
func (o *Order) Kind() AggregateKind { return KindOrder }

func (o *Order) isAggregate() {}

// Command is an immutable (aggregate, operation) pair staged for later execution
type Command struct {
	aggregate Aggregate
	operation Operation
}

// NewCommand creates a command for the given aggregate and operation
func NewCommand(aggregate Aggregate, operation Operation) Command {
	return Command{
		aggregate: aggregate,
		operation: operation,
	}
}

// Aggregate returns the staged aggregate state
func (c Command) Aggregate() Aggregate {
	return c.aggregate
}

// Operation returns the staged operation
func (c Command) Operation() Operation {
	return c.operation
}

// ChangeLog is an ordered sequence of staged commands. Insertion order is
// semantically significant: it encodes the write ordering required by
// referential constraints and is replayed front-to-back at commit
type ChangeLog struct {
	commands []Command
}

// NewChangeLog creates an empty change log
func NewChangeLog() *ChangeLog {
	return &ChangeLog{}
}

// Append records a command at the end of the log
func (l *ChangeLog) Append(cmd Command) {
	l.commands = append(l.commands, cmd)
}

// Len returns the number of staged commands
func (l *ChangeLog) Len() int {
	return len(l.commands)
}

// Drain hands off every staged command in insertion order and leaves the log
// empty. Ownership of the commands transfers to the caller; the log is reset
// regardless of what the caller does with them
func (l *ChangeLog) Drain() []Command {
	commands := l.commands
	l.commands = nil
	return commands
}
