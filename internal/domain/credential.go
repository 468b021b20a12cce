package domain

type Credential struct {
	Login    string
	Password string
}
