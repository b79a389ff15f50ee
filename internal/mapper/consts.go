package mapper

// individualEvents are the INDI children mapped to Individual.Events.
var individualEvents = map[string]bool{
	"BIRT": true, "CHR": true, "DEAT": true, "BURI": true, "CREM": true,
	"ADOP": true, "BAPM": true, "BARM": true, "BASM": true, "BLES": true,
	"CHRA": true, "CONF": true, "FCOM": true, "ORDN": true, "NATU": true,
	"EMIG": true, "IMMI": true, "CENS": true, "PROB": true, "WILL": true,
	"GRAD": true, "RETI": true, "EVEN": true,
}

// individualAttributes are the INDI children mapped to Individual.Attributes.
var individualAttributes = map[string]bool{
	"CAST": true, "DSCR": true, "EDUC": true, "IDNO": true, "NATI": true,
	"NCHI": true, "NMR": true, "OCCU": true, "PROP": true, "RELI": true,
	"RESI": true, "SSN": true, "TITL": true, "FACT": true,
}

// familyEvents are the FAM children mapped to Family.Events.
var familyEvents = map[string]bool{
	"ANUL": true, "CENS": true, "DIV": true, "DIVF": true, "ENGA": true,
	"MARB": true, "MARC": true, "MARR": true, "MARL": true, "MARS": true,
	"RESI": true, "EVEN": true,
}

// famcEvents may carry a FAMC line naming the family the event relates to.
var famcEvents = map[string]bool{
	"BIRT": true, "CHR": true, "ADOP": true,
}
