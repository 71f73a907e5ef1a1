package tag

import "github.com/pawerflow/question-service/internal/domain"

// CatalogVersion is bumped whenever DefaultCatalog gains tags. Existing tags
// must never change, otherwise Seed fails with domain.ErrDuplicateSlug.
const CatalogVersion = 1

// DefaultCatalog returns the built-in pet care taxonomy applied at startup.
func DefaultCatalog() domain.TagCatalog {
	return domain.TagCatalog{
		Version: CatalogVersion,
		Tags: []domain.TagDefinition{
			{Slug: "dog-care", Name: "Dog Care",
				Description: "Questions about feeding, grooming, exercise, training, and health for dogs of all breeds and sizes."},
			{Slug: "cat-care", Name: "Cat Care",
				Description: "Tips and advice for caring for cats, including litter training, diet, scratching behavior, and vet visits."},
			{Slug: "small-animals", Name: "Small Animals",
				Description: "Care for rabbits, guinea pigs, hamsters, ferrets, and other small pets including housing, diet, and play."},
			{Slug: "fish-care", Name: "Fish & Aquatic Pets",
				Description: "Aquarium setup, water quality, species compatibility, and health care for freshwater and saltwater fish."},
			{Slug: "exotic-pets", Name: "Exotic Pets",
				Description: "Care and handling information for reptiles, amphibians, birds, and other exotic or uncommon pets."},
			{Slug: "pet-health", Name: "Pet Health",
				Description: "Medical and wellness topics: vaccinations, common illnesses, preventative care, and vet recommendations."},
			{Slug: "pet-nutrition", Name: "Pet Nutrition",
				Description: "Questions on pet food, special diets, treats, supplements, and nutrition requirements by species."},
			{Slug: "pet-grooming", Name: "Grooming",
				Description: "Bathing, brushing, nail trimming, and coat care for pets to keep them comfortable and healthy."},
			{Slug: "pet-safety", Name: "Safety & First Aid",
				Description: "Emergency care, first aid, toxic foods, and household hazards to watch out for with pets."},
			{Slug: "pet-training", Name: "Training & Behavior",
				Description: "Guidance on obedience training, housebreaking, behavioral issues, and positive reinforcement methods."},
			{Slug: "working-dogs", Name: "Working & Service Dogs",
				Description: "Training, care, and legal aspects of service dogs, therapy animals, police dogs, and other working companions."},
			{Slug: "pet-adoption", Name: "Adoption & Rescue",
				Description: "Discussions around adopting pets, rescue organizations, fostering, and integrating new pets into a home."},
			{Slug: "pet-housing", Name: "Housing & Habitats",
				Description: "Advice on cages, tanks, hutches, terrariums, and enclosures that keep pets safe and comfortable."},
			{Slug: "pet-travel", Name: "Travel with Pets",
				Description: "Tips for traveling safely with pets in cars, planes, or trains. Covers carriers, calming, regulations, and more."},
			{Slug: "pet-products", Name: "Pet Products",
				Description: "Reviews and advice on toys, collars, leashes, beds, aquariums, and other pet supplies or equipment."},
			{Slug: "pet-tech", Name: "Pet Tech & Gadgets",
				Description: "Discussion about smart collars, GPS trackers, feeders, cameras, and other tech designed for pets."},
			{Slug: "pet-breeding", Name: "Breeding",
				Description: "Responsible breeding practices, pregnancy care, whelping, and raising litters."},
			{Slug: "pet-rescue-stories", Name: "Rescue Stories",
				Description: "A place to share and learn from inspiring rescue and adoption experiences."},
			{Slug: "wildlife", Name: "Wildlife Encounters",
				Description: "Dealing with pets interacting with wildlife: prevention, safety, and co-existence tips."},
			{Slug: "pet-loss", Name: "Pet Loss & Grief",
				Description: "Support for coping with the loss of a beloved pet, memorial ideas, and community healing."},
		},
	}
}
