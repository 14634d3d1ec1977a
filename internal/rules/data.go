package rules

import "github.com/f3rmion/protsite/internal/protein"

var defaultPalette = Palette{
	Protease: "#ff6b6b",
	Phospho:  "#ff1744",
}

var defaultEnzymes = []protein.Rule{
	{Name: "Trypsin", Residues: "KR", Color: "#ff6b6b", Description: "Cleaves after K, R"},
	{Name: "Lys-C", Residues: "K", Color: "#e74c3c", Description: "Cleaves after K"},
	{Name: "Arg-C", Residues: "R", Color: "#c0392b", Description: "Cleaves after R"},
	{Name: "Glu-C", Residues: "E", Color: "#e67e22", Description: "Cleaves after E"},
	{Name: "Asp-N", Residues: "D", Color: "#d35400", Description: "Cleaves before D"},
	{Name: "Chymotrypsin", Residues: "FYW", Color: "#4ecdc4", Description: "Cleaves after F, Y, W"},
	{Name: "Pepsin", Residues: "FL", Color: "#45b7d1", Description: "Cleaves after F, L"},
	{Name: "Elastase", Residues: "AVSG", Color: "#f9ca24", Description: "Cleaves after A, V, S, G"},
	{Name: "Thermolysin", Residues: "LIV", Color: "#6c5ce7", Description: "Cleaves before L, I, V"},
	{Name: "Caspase-3", Residues: "D", Color: "#fd79a8", Description: "Cleaves after D (DEVD motif)"},
	{Name: "Thrombin", Residues: "R", Color: "#a29bfe", Description: "Cleaves after R"},
	{Name: "Factor Xa", Residues: "R", Color: "#74b9ff", Description: "Cleaves after R (IEGR motif)"},
}

var defaultPTMs = []protein.Rule{
	{Name: "Phosphorylation (S)", Residues: "S", Color: "#ff1744", Description: "Phosphoserine", Symbol: "pS"},
	{Name: "Phosphorylation (T)", Residues: "T", Color: "#d500f9", Description: "Phosphothreonine", Symbol: "pT"},
	{Name: "Phosphorylation (Y)", Residues: "Y", Color: "#651fff", Description: "Phosphotyrosine", Symbol: "pY"},
	{Name: "Phosphorylation (S/T)", Residues: "ST", Color: "#ff6d00", Description: "Phosphoserine/Threonine", Symbol: "pS/T"},
	{Name: "Phosphorylation (S/T/Y)", Residues: "STY", Color: "#00bfa5", Description: "All phosphosites", Symbol: "pSTY"},
	{Name: "N-Glycosylation (N)", Residues: "N", Color: "#2979ff", Description: "N-glycosylation site", Symbol: "gN"},
	{Name: "O-Glycosylation (S/T)", Residues: "ST", Color: "#00b8d4", Description: "O-glycosylation site", Symbol: "gS/T"},
	{Name: "Acetylation (K)", Residues: "K", Color: "#ffd600", Description: "Lysine acetylation", Symbol: "acK"},
	{Name: "Methylation (K)", Residues: "K", Color: "#ffab00", Description: "Lysine methylation", Symbol: "meK"},
	{Name: "Methylation (R)", Residues: "R", Color: "#ff6f00", Description: "Arginine methylation", Symbol: "meR"},
	{Name: "Ubiquitination (K)", Residues: "K", Color: "#dd2c00", Description: "Lysine ubiquitination", Symbol: "ubK"},
	{Name: "Sumoylation (K)", Residues: "K", Color: "#c51162", Description: "Lysine sumoylation", Symbol: "suK"},
}

// Phospho variants share the palette color; the per-rule Color is unused.
var defaultPhospho = []protein.Rule{
	{Name: "Phosphorylation (S)", Residues: "S", Description: "Phosphoserine", Symbol: "pS"},
	{Name: "Phosphorylation (T)", Residues: "T", Description: "Phosphothreonine", Symbol: "pT"},
	{Name: "Phosphorylation (Y)", Residues: "Y", Description: "Phosphotyrosine", Symbol: "pY"},
}
