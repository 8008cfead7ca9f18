package mini

type ExprStmt struct {
	Expr     Expression
	position Position
}

func (s *ExprStmt) stmtNode()     {}
func (s *ExprStmt) Pos() Position { return s.position }

type PrintStmt struct {
	Expr     Expression
	position Position
}

func (s *PrintStmt) stmtNode()     {}
func (s *PrintStmt) Pos() Position { return s.position }

// VarDeclStmt introduces a new variable: `name: type = value`. The type
// annotation is stored but never validated against the assigned value.
type VarDeclStmt struct {
	Name     string
	Type     TokenType
	Value    Expression
	position Position
}

func (s *VarDeclStmt) stmtNode()     {}
func (s *VarDeclStmt) Pos() Position { return s.position }

// AssignStmt rebinds an already-declared variable.
type AssignStmt struct {
	Name     string
	Value    Expression
	position Position
}

func (s *AssignStmt) stmtNode()     {}
func (s *AssignStmt) Pos() Position { return s.position }

// BlockStmt holds the statements between one matched INDENT/DEDENT pair.
type BlockStmt struct {
	Statements []Statement
	position   Position
}

func (s *BlockStmt) stmtNode()     {}
func (s *BlockStmt) Pos() Position { return s.position }

type IfStmt struct {
	Condition  Expression
	Consequent *BlockStmt
	Alternate  *BlockStmt
	position   Position
}

func (s *IfStmt) stmtNode()     {}
func (s *IfStmt) Pos() Position { return s.position }

type Param struct {
	Name string
	Type TokenType
}

type FunctionStmt struct {
	Name     string
	Params   []Param
	ReturnTy TokenType
	Body     *BlockStmt
	position Position
}

func (s *FunctionStmt) stmtNode()     {}
func (s *FunctionStmt) Pos() Position { return s.position }

type ReturnStmt struct {
	Value    Expression
	position Position
}

func (s *ReturnStmt) stmtNode()     {}
func (s *ReturnStmt) Pos() Position { return s.position }

// CommentStmt carries the comment text through the pipeline; evaluation
// treats it as a no-op.
type CommentStmt struct {
	Text     string
	position Position
}

func (s *CommentStmt) stmtNode()     {}
func (s *CommentStmt) Pos() Position { return s.position }
