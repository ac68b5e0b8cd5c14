package domain

// TagCategories lists the summary tag categories in display order.
var TagCategories = []string{"paper_type", "backbone", "objective", "tokenization", "topology"}

// TagLabels maps known tag values to their display labels, per category.
var TagLabels = map[string]map[string]string{
	"paper_type": {
		"new-model":     "New Model",
		"eeg-fm":        "New Model",
		"post-training": "Post-Training",
		"benchmark":     "Benchmark",
		"survey":        "Survey",
	},
	"backbone": {
		"transformer": "Transformer",
		"mamba-ssm":   "Mamba-SSM",
		"moe":         "MoE",
		"diffusion":   "Diffusion",
	},
	"objective": {
		"masked-reconstruction":    "Masked Reconstruction",
		"autoregressive":           "Autoregressive",
		"contrastive":              "Contrastive",
		"discrete-code-prediction": "Discrete Code Prediction",
	},
	"tokenization": {
		"time-patch":      "Time Patch",
		"latent-tokens":   "Latent Tokens",
		"discrete-tokens": "Discrete Tokens",
	},
	"topology": {
		"fixed-montage":     "Fixed Montage",
		"channel-flexible":  "Channel Flexible",
		"topology-agnostic": "Topology Agnostic",
	},
}

// IsTagCategory reports whether category is one of TagCategories.
func IsTagCategory(category string) bool {
	_, ok := TagLabels[category]
	return ok
}
