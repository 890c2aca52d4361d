package localdb

// Keys del kv store. Este paquete es el único dueño de estas keys.
const (
	KeyPets         = "pets"
	KeyCurrentPetID = "currentPetId"
	KeyReminders    = "reminders"
	KeyChecklists   = "checklists"
	KeyVetVisits    = "vetVisits"

	// KeyPendingCascade guarda el pet id de un DeletePet en curso.
	// Si existe al abrir el store, el cascade se completa.
	KeyPendingCascade = "pendingCascade"

	// Formato viejo: un único pet serializado + su id.
	LegacyKeyPet   = "pet"
	LegacyKeyPetID = "petId"
)

// OwnedKeys lista todas las keys que maneja el store (snapshot/restore, doctor).
func OwnedKeys() []string {
	return []string{
		KeyPets,
		KeyCurrentPetID,
		KeyReminders,
		KeyChecklists,
		KeyVetVisits,
		KeyPendingCascade,
		LegacyKeyPet,
		LegacyKeyPetID,
	}
}

func collectionKeys() []string {
	return []string{KeyPets, KeyReminders, KeyChecklists, KeyVetVisits}
}
