package client

import "despensa/internal/domain"

type ClientDTO struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type ClientDetailDTO struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	Phone     string       `json:"phone"`
	Addresses []AddressDTO `json:"addresses"`
}

type ClientInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type AddressDTO struct {
	ID           int     `json:"id"`
	Street       string  `json:"street"`
	Number       string  `json:"number"`
	Neighborhood string  `json:"neighborhood"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	ZipCode      string  `json:"zip_code"`
	Complement   *string `json:"complement"`
	Reference    *string `json:"reference"`
	Nickname     string  `json:"nickname"`
}

type AddressInput struct {
	Street       string  `json:"street"`
	Number       string  `json:"number"`
	Neighborhood string  `json:"neighborhood"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	ZipCode      string  `json:"zip_code"`
	Complement   *string `json:"complement"`
	Reference    *string `json:"reference"`
	Nickname     string  `json:"nickname"`
}

func toClientDTO(c domain.Client) ClientDTO {
	return ClientDTO{ID: c.ID, Name: c.Name, Phone: c.Phone}
}

func toAddressDTO(a domain.Address) AddressDTO {
	return AddressDTO{
		ID:           a.ID,
		Street:       a.Street,
		Number:       a.Number,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		ZipCode:      a.ZipCode,
		Complement:   a.Complement,
		Reference:    a.Reference,
		Nickname:     a.Nickname,
	}
}

func toAddressDomain(in AddressInput) domain.Address {
	return domain.Address{
		Street:       in.Street,
		Number:       in.Number,
		Neighborhood: in.Neighborhood,
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
		Complement:   in.Complement,
		Reference:    in.Reference,
		Nickname:     in.Nickname,
	}
}
