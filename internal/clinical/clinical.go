// Package clinical holds the static reference card shown next to each
// prediction. It is informational text for the presentation layer, not a
// diagnosis.
package clinical

import "github.com/neuroscan/mri-api/internal/domain"

type Info struct {
	Label         string   `json:"label"`
	Severity      string   `json:"severity"`
	Description   string   `json:"description"`
	Symptoms      []string `json:"symptoms"`
	Treatment     []string `json:"treatment"`
	Note          string   `json:"note"`
	ModelAccuracy string   `json:"model_accuracy"`
}

var cards = map[string]Info{
	domain.ClassGlioma: {
		Label:    "Glioma",
		Severity: "High Concern",
		Description: "Gliomas are tumors that originate in the glial cells of the brain or spine. " +
			"They are the most common type of primary brain tumor, accounting for about 33% of all brain tumors.",
		Symptoms: []string{
			"Persistent headaches",
			"Seizures",
			"Memory & cognitive changes",
			"Vision or speech problems",
			"Nausea and vomiting",
		},
		Treatment: []string{
			"Surgical resection",
			"Radiation therapy",
			"Chemotherapy (Temozolomide)",
			"Targeted therapy",
		},
		Note:          "Immediate consultation with a neuro-oncologist is strongly recommended.",
		ModelAccuracy: "92%",
	},
	domain.ClassMeningioma: {
		Label:    "Meningioma",
		Severity: "Moderate Concern",
		Description: "Meningiomas arise from the meninges, the membranes surrounding the brain and spinal cord. " +
			"Most are benign and slow-growing, though some can be aggressive.",
		Symptoms: []string{
			"Gradual headaches",
			"Hearing or vision loss",
			"Memory difficulties",
			"Weakness in limbs",
			"Personality changes",
		},
		Treatment: []string{
			"Active surveillance (watch & wait)",
			"Surgical removal",
			"Stereotactic radiosurgery",
			"Radiation therapy",
		},
		Note:          "Many meningiomas are benign. A neurologist can advise on the best monitoring plan.",
		ModelAccuracy: "84%",
	},
	domain.ClassNoTumor: {
		Label:    "No Tumor Detected",
		Severity: "All Clear",
		Description: "No tumor was detected in this MRI scan. The brain tissue appears within normal " +
			"classification parameters. Regular check-ups are still advised if symptoms persist.",
		Symptoms: []string{"N/A - no tumor indicators found"},
		Treatment: []string{
			"No immediate treatment needed",
			"Continue regular health check-ups",
			"Consult a doctor if symptoms persist",
		},
		Note:          "Always follow up with a medical professional for a complete diagnosis.",
		ModelAccuracy: "95%",
	},
	domain.ClassPituitary: {
		Label:    "Pituitary Tumor",
		Severity: "Requires Attention",
		Description: "Pituitary tumors develop in the pituitary gland at the base of the brain. " +
			"Most are benign adenomas that grow slowly, but they can disrupt hormone production significantly.",
		Symptoms: []string{
			"Headaches behind the eyes",
			"Vision problems",
			"Hormonal imbalances",
			"Unexplained weight changes",
			"Fatigue and mood swings",
		},
		Treatment: []string{
			"Medication (dopamine agonists)",
			"Transsphenoidal surgery",
			"Radiation therapy",
			"Hormone replacement therapy",
		},
		Note:          "Most pituitary tumors are non-cancerous but require endocrinology follow-up.",
		ModelAccuracy: "99%",
	},
}

// Lookup returns the reference card for a class label. The second return is
// false for labels the model does not produce.
func Lookup(label string) (Info, bool) {
	info, ok := cards[label]
	return info, ok
}
