package ast

type (
	CharID uint32
	FragID uint32
)

const (
	NoCharID CharID = 0
	NoFragID FragID = 0
)

func (id CharID) IsValid() bool { return id != NoCharID }
func (id FragID) IsValid() bool { return id != NoFragID }
