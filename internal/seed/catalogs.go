package seed

import (
	"medcore-clinic/internal/domain/entity"
)

// CIE10Catalog returns the diagnosis coding table
func CIE10Catalog() []entity.CIE10Code {
	return []entity.CIE10Code{
		{Code: "J06.9", Label: "Infeccion aguda de las vias respiratorias superiores"},
		{Code: "I10", Label: "Hipertension esencial (primaria)"},
		{Code: "E11.9", Label: "Diabetes mellitus tipo 2 sin complicaciones"},
		{Code: "M54.5", Label: "Lumbago no especificado"},
		{Code: "K29.7", Label: "Gastritis no especificada"},
		{Code: "N39.0", Label: "Infeccion de vias urinarias, sitio no especificado"},
		{Code: "J18.9", Label: "Neumonia no especificada"},
		{Code: "R51", Label: "Cefalea"},
		{Code: "B34.9", Label: "Infeccion viral no especificada"},
		{Code: "A09", Label: "Diarrea y gastroenteritis de presunto origen infeccioso"},
		{Code: "Z00.0", Label: "Examen medico general"},
		{Code: "J02.9", Label: "Faringitis aguda no especificada"},
	}
}

// LabExamCatalog returns the laboratory exam categories
func LabExamCatalog() []entity.ExamCategory {
	return []entity.ExamCategory{
		{
			ID:   "hem",
			Name: "Hematologia",
			Exams: []entity.CatalogExam{
				{ID: "hem-01", Name: "Hemograma completo"},
				{ID: "hem-02", Name: "Velocidad de sedimentacion (VSG)"},
				{ID: "hem-03", Name: "Tiempo de protrombina (TP)"},
			},
		},
		{
			ID:   "bio",
			Name: "Bioquimica",
			Exams: []entity.CatalogExam{
				{ID: "bio-01", Name: "Glucosa en ayunas"},
				{ID: "bio-02", Name: "Perfil lipidico"},
				{ID: "bio-03", Name: "Creatinina serica"},
				{ID: "bio-04", Name: "Urea"},
			},
		},
		{
			ID:   "ori",
			Name: "Orina",
			Exams: []entity.CatalogExam{
				{ID: "ori-01", Name: "Examen completo de orina"},
				{ID: "ori-02", Name: "Urocultivo"},
				{ID: "ori-03", Name: "Microalbuminuria"},
			},
		},
		{
			ID:   "inm",
			Name: "Inmunologia",
			Exams: []entity.CatalogExam{
				{ID: "inm-01", Name: "Proteina C reactiva (PCR)"},
				{ID: "inm-02", Name: "Factor reumatoide"},
				{ID: "inm-03", Name: "TSH"},
			},
		},
		{
			ID:   "mic",
			Name: "Microbiologia",
			Exams: []entity.CatalogExam{
				{ID: "mic-01", Name: "Hemocultivo"},
				{ID: "mic-02", Name: "Coprocultivo"},
				{ID: "mic-03", Name: "BK en esputo"},
			},
		},
		{
			ID:   "hep",
			Name: "Hepatico",
			Exams: []entity.CatalogExam{
				{ID: "hep-01", Name: "TGO (AST)"},
				{ID: "hep-02", Name: "TGP (ALT)"},
				{ID: "hep-03", Name: "Bilirrubina total y fraccionada"},
			},
		},
	}
}

// ImagingExamCatalog returns the imaging exam categories
func ImagingExamCatalog() []entity.ExamCategory {
	return []entity.ExamCategory{
		{
			ID:   "rx",
			Name: "Radiografia",
			Exams: []entity.CatalogExam{
				{ID: "rx-01", Name: "Radiografia de torax PA"},
				{ID: "rx-02", Name: "Radiografia de columna lumbar"},
				{ID: "rx-03", Name: "Radiografia de rodilla AP y lateral"},
			},
		},
		{
			ID:   "eco",
			Name: "Ecografia",
			Exams: []entity.CatalogExam{
				{ID: "eco-01", Name: "Ecografia abdominal completa"},
				{ID: "eco-02", Name: "Ecografia renal"},
				{ID: "eco-03", Name: "Ecografia pelvica"},
			},
		},
		{
			ID:   "tac",
			Name: "Tomografia",
			Exams: []entity.CatalogExam{
				{ID: "tac-01", Name: "TAC cerebral simple"},
				{ID: "tac-02", Name: "TAC de torax"},
				{ID: "tac-03", Name: "TAC abdomino-pelvica"},
			},
		},
		{
			ID:   "rmn",
			Name: "Resonancia",
			Exams: []entity.CatalogExam{
				{ID: "rmn-01", Name: "RMN cerebral"},
				{ID: "rmn-02", Name: "RMN de rodilla"},
				{ID: "rmn-03", Name: "RMN de columna lumbar"},
			},
		},
		{
			ID:   "endo",
			Name: "Endoscopia",
			Exams: []entity.CatalogExam{
				{ID: "endo-01", Name: "Endoscopia digestiva alta"},
				{ID: "endo-02", Name: "Colonoscopia"},
				{ID: "endo-03", Name: "Broncoscopia"},
			},
		},
	}
}

// MedicationCatalog returns the dispensable medication list
func MedicationCatalog() []entity.Medication {
	return []entity.Medication{
		{ID: "med-01", Name: "Amoxicilina 500mg", Presentation: "Capsula", DefaultRoute: entity.RouteOral},
		{ID: "med-02", Name: "Ibuprofeno 400mg", Presentation: "Tableta", DefaultRoute: entity.RouteOral},
		{ID: "med-03", Name: "Omeprazol 20mg", Presentation: "Capsula", DefaultRoute: entity.RouteOral},
		{ID: "med-04", Name: "Paracetamol 500mg", Presentation: "Tableta", DefaultRoute: entity.RouteOral},
		{ID: "med-05", Name: "Metformina 850mg", Presentation: "Tableta", DefaultRoute: entity.RouteOral},
		{ID: "med-06", Name: "Losartan 50mg", Presentation: "Tableta", DefaultRoute: entity.RouteOral},
		{ID: "med-07", Name: "Amlodipino 5mg", Presentation: "Tableta", DefaultRoute: entity.RouteOral},
		{ID: "med-08", Name: "Ciprofloxacino 500mg", Presentation: "Tableta", DefaultRoute: entity.RouteOral},
		{ID: "med-09", Name: "Dexametasona 4mg", Presentation: "Ampolla", DefaultRoute: entity.RouteIM},
		{ID: "med-10", Name: "Ranitidina 150mg", Presentation: "Tableta", DefaultRoute: entity.RouteOral},
		{ID: "med-11", Name: "Diclofenaco 75mg", Presentation: "Ampolla", DefaultRoute: entity.RouteIM},
		{ID: "med-12", Name: "Salbutamol 100mcg", Presentation: "Inhalador", DefaultRoute: entity.RouteInhalation},
		{ID: "med-13", Name: "Ceftriaxona 1g", Presentation: "Ampolla", DefaultRoute: entity.RouteIV},
		{ID: "med-14", Name: "Clotrimazol 1%", Presentation: "Crema", DefaultRoute: entity.RouteTopical},
		{ID: "med-15", Name: "Metoclopramida 10mg", Presentation: "Tableta", DefaultRoute: entity.RouteOral},
	}
}
