package ast

import "github.com/golang-plc/stcore/internal/token"

// Statement is implemented by every statement node.
type Statement interface {
	Node
	statementNode()
}

// Assignment is `target := expr`, where target is a Variable (plain,
// member-access, or indexed).
type Assignment struct {
	Position token.Position
	Target   *Variable
	Value    Expression
}

func (a *Assignment) Pos() token.Position { return a.Position }
func (*Assignment) statementNode()        {}

// NamedArg is one `Name := Expr` pair in a function-block call.
type NamedArg struct {
	Name  string
	Value Expression
}

// FunctionBlockCall invokes a stateful function-block instance with
// named arguments, e.g. `t(IN := Start, PT := T#500ms)`.
type FunctionBlockCall struct {
	Position token.Position
	Instance string
	Args     []NamedArg
}

func (f *FunctionBlockCall) Pos() token.Position { return f.Position }
func (*FunctionBlockCall) statementNode()        {}

// ElsifClause is one ELSIF branch of an IfStatement.
type ElsifClause struct {
	Condition Expression
	Then      []Statement
}

// IfStatement is IF/ELSIF.../ELSE/END_IF.
type IfStatement struct {
	Position  token.Position
	Condition Expression
	Then      []Statement
	Elsif     []ElsifClause
	Else      []Statement // nil when absent
}

func (s *IfStatement) Pos() token.Position { return s.Position }
func (*IfStatement) statementNode()        {}

// CaseLabel is either a single integer or an inclusive range.
type CaseLabel struct {
	IsRange bool
	Value   int64
	Low     int64
	High    int64
}

// CaseClause is one branch of a CaseStatement.
type CaseClause struct {
	Labels []CaseLabel
	Body   []Statement
}

// CaseStatement is CASE selector OF ... END_CASE.
type CaseStatement struct {
	Position token.Position
	Selector Expression
	Cases    []CaseClause
	Else     []Statement // nil when absent
}

func (s *CaseStatement) Pos() token.Position { return s.Position }
func (*CaseStatement) statementNode()        {}

// ForStatement is FOR var := start TO/DOWNTO end [BY step] DO ... END_FOR.
type ForStatement struct {
	Position token.Position
	Variable string
	Start    Expression
	End      Expression
	Step     Expression // nil => default of 1
	Body     []Statement
}

func (s *ForStatement) Pos() token.Position { return s.Position }
func (*ForStatement) statementNode()        {}

// WhileStatement is WHILE condition DO ... END_WHILE (pre-test).
type WhileStatement struct {
	Position  token.Position
	Condition Expression
	Body      []Statement
}

func (s *WhileStatement) Pos() token.Position { return s.Position }
func (*WhileStatement) statementNode()        {}

// RepeatStatement is REPEAT ... UNTIL condition END_REPEAT (post-test,
// exits when condition becomes true).
type RepeatStatement struct {
	Position  token.Position
	Body      []Statement
	Condition Expression
}

func (s *RepeatStatement) Pos() token.Position { return s.Position }
func (*RepeatStatement) statementNode()        {}

// ReturnStatement unwinds to the end of the current program/function.
type ReturnStatement struct {
	Position token.Position
}

func (s *ReturnStatement) Pos() token.Position { return s.Position }
func (*ReturnStatement) statementNode()        {}

// ExitStatement terminates the innermost loop.
type ExitStatement struct {
	Position token.Position
}

func (s *ExitStatement) Pos() token.Position { return s.Position }
func (*ExitStatement) statementNode()        {}

// ContinueStatement skips to the next iteration of the innermost loop.
type ContinueStatement struct {
	Position token.Position
}

func (s *ContinueStatement) Pos() token.Position { return s.Position }
func (*ContinueStatement) statementNode()        {}
