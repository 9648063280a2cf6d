package entity

// Registration is one REURB applicant/property pair.
//
// Every column is nullable: rows come from partially filled forms and
// spreadsheet imports. Column names are kept from the legacy schema.
type Registration struct {
	ID int `gorm:"primaryKey" json:"id"`

	// Applicant
	ApplicantName          *string `gorm:"column:req_nome;size:150" json:"req_nome"`
	ApplicantCPF           *string `gorm:"column:req_cpf;size:20" json:"req_cpf"`
	ApplicantRG            *string `gorm:"column:req_rg;size:20" json:"req_rg"`
	ApplicantBirthDate     *string `gorm:"column:req_data_nasc;size:20" json:"req_data_nasc"`
	ApplicantNationality   *string `gorm:"column:req_nacionalidade;size:50" json:"req_nacionalidade"`
	ApplicantMaritalStatus *string `gorm:"column:req_estado_civil;size:30" json:"req_estado_civil"`
	SpouseName             *string `gorm:"column:conj_nome;size:150" json:"conj_nome"`
	SpouseCPF              *string `gorm:"column:conj_cpf;size:20" json:"conj_cpf"`
	ApplicantOccupation    *string `gorm:"column:req_profissao;size:100" json:"req_profissao"`
	ApplicantPhone         *string `gorm:"column:req_telefone;size:30" json:"req_telefone"`
	ApplicantEmail         *string `gorm:"column:req_email;size:150" json:"req_email"`

	// Applicant's current address
	CurrentZipCode      *string `gorm:"column:req_cep_atual;size:15" json:"req_cep_atual"`
	CurrentStreet       *string `gorm:"column:req_logradouro_atual;size:150" json:"req_logradouro_atual"`
	CurrentNumber       *string `gorm:"column:req_numero_atual;size:20" json:"req_numero_atual"`
	CurrentComplement   *string `gorm:"column:req_complemento_atual;size:100" json:"req_complemento_atual"`
	CurrentNeighborhood *string `gorm:"column:req_bairro_atual;size:100" json:"req_bairro_atual"`
	CurrentCity         *string `gorm:"column:req_cidade_atual;size:100" json:"req_cidade_atual"`
	CurrentState        *string `gorm:"column:req_uf_atual;size:2" json:"req_uf_atual"`

	// Property
	PropertyZipCode      *string  `gorm:"column:imovel_cep;size:15" json:"imovel_cep"`
	PropertyStreet       *string  `gorm:"column:imovel_logradouro;size:150" json:"imovel_logradouro"`
	PropertyNumber       *string  `gorm:"column:imovel_numero;size:20" json:"imovel_numero"`
	PropertyComplement   *string  `gorm:"column:imovel_complemento;size:100" json:"imovel_complemento"`
	PropertyNeighborhood *string  `gorm:"column:imovel_bairro;size:100" json:"imovel_bairro"`
	PropertyCity         *string  `gorm:"column:imovel_cidade;size:100" json:"imovel_cidade"`
	PropertyState        *string  `gorm:"column:imovel_uf;size:2" json:"imovel_uf"`
	PropertyRegistration *string  `gorm:"column:inscricao_imobiliaria;size:30" json:"inscricao_imobiliaria"`
	TotalArea            *float64 `gorm:"column:imovel_area_total" json:"imovel_area_total"`
	BuiltArea            *float64 `gorm:"column:imovel_area_construida" json:"imovel_area_construida"`
	Usage                *string  `gorm:"column:imovel_uso;size:30" json:"imovel_uso"`
	ConstructionStandard *string  `gorm:"column:imovel_tipo_construcao;size:30" json:"imovel_tipo_construcao"`
	OccupationDate       *string  `gorm:"column:imovel_data_ocupacao;size:20" json:"imovel_data_ocupacao"`
	OccupationForm       *string  `gorm:"column:imovel_forma_ocupacao;type:text" json:"imovel_forma_ocupacao"`
	PossessionDocs       *string  `gorm:"column:imovel_docs_posse;type:text" json:"imovel_docs_posse"`
	Photos               *string  `gorm:"column:imovel_fotos;type:text" json:"imovel_fotos"`
	Sketch               *string  `gorm:"column:imovel_croqui;type:text" json:"imovel_croqui"`
	BoundaryRight        *string  `gorm:"column:confrontante_ld;size:200" json:"confrontante_ld"`
	BoundaryLeft         *string  `gorm:"column:confrontante_le;size:200" json:"confrontante_le"`
	BoundaryBack         *string  `gorm:"column:confrontante_fundo;size:200" json:"confrontante_fundo"`
	BoundaryFront        *string  `gorm:"column:confrontante_frente;size:200" json:"confrontante_frente"`

	// REURB questionnaire
	HousingPurpose      *string  `gorm:"column:reurb_finalidade_moradia;size:50" json:"reurb_finalidade_moradia"`
	MonthlyFamilyIncome *float64 `gorm:"column:reurb_renda_familiar" json:"reurb_renda_familiar"`
	Ownership           *string  `gorm:"column:reurb_propriedade;size:30" json:"reurb_propriedade"`
	InfrastructureNeeds *string  `gorm:"column:reurb_infra_necessaria;size:30" json:"reurb_infra_necessaria"`
	Risks               *string  `gorm:"column:reurb_riscos;size:30" json:"reurb_riscos"`
	RisksDescription    *string  `gorm:"column:reurb_riscos_descricao;type:text" json:"reurb_riscos_descricao"`
	OwnsOtherProperty   *string  `gorm:"column:reurb_outro_imovel;size:10" json:"reurb_outro_imovel"`
	CadUnico            *string  `gorm:"column:reurb_cadunico;size:10" json:"reurb_cadunico"`

	// Relations
	Constructions []*Construction `gorm:"foreignKey:RegistrationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (Registration) TableName() string {
	return "cadastros_reurb"
}
