package entities

type ValidatedMember struct {
	*Member
}

func NewValidatedMember(member *Member) (*ValidatedMember, error) {
	if err := member.validate(); err != nil {
		return nil, err
	}

	return &ValidatedMember{Member: member}, nil
}

func (vm *ValidatedMember) GetMember() *Member {
	return vm.Member
}
