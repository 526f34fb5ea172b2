package ast

type (
	UnitID  uint32
	ItemID  uint32
	ValueID uint32
	AliasID uint32
	ExprID  uint32
)

const (
	NoUnitID  UnitID  = 0
	NoItemID  ItemID  = 0
	NoValueID ValueID = 0
	NoAliasID AliasID = 0
	NoExprID  ExprID  = 0
)

func (id UnitID) IsValid() bool  { return id != NoUnitID }
func (id ItemID) IsValid() bool  { return id != NoItemID }
func (id ValueID) IsValid() bool { return id != NoValueID }
func (id AliasID) IsValid() bool { return id != NoAliasID }
func (id ExprID) IsValid() bool  { return id != NoExprID }
