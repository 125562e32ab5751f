package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/recommendation"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/repository"
	"github.com/jhoicas/gramin-udyami-api/pkg/i18n"
)

type notificationText struct {
	Title   string
	Message string // puede llevar verbos de fmt
}

var notificationTexts = map[string]map[string]notificationText{
	i18n.English: {
		entity.NotificationScheme:   {"New Scheme Match Found!", "%s matches your profile. Benefit: %s"},
		entity.NotificationInfo:     {"Complete Your Profile", "Add your occupation, business type and experience to get personalised scheme recommendations."},
		entity.NotificationReminder: {"Finish Your Setup", "Complete your profile and review matching schemes to finish onboarding."},
		entity.NotificationSuccess:  {"Application Status Update", "Your business \"%s\" is listed in the directory."},
	},
	i18n.Hindi: {
		entity.NotificationScheme:   {"नई योजना मैच मिली!", "%s आपकी प्रोफाइल से मेल खाती है। लाभ: %s"},
		entity.NotificationInfo:     {"अपनी प्रोफाइल पूरी करें", "व्यक्तिगत योजना सुझाव पाने के लिए अपना व्यवसाय, व्यापार का प्रकार और अनुभव जोड़ें।"},
		entity.NotificationReminder: {"अपना सेटअप पूरा करें", "ऑनबोर्डिंग पूरा करने के लिए अपनी प्रोफाइल पूरी करें और मेल खाने वाली योजनाएं देखें।"},
		entity.NotificationSuccess:  {"आवेदन स्थिति अपडेट", "आपका व्यवसाय \"%s\" निर्देशिका में सूचीबद्ध है।"},
	},
	i18n.Marathi: {
		entity.NotificationScheme:   {"नवीन योजना मॅच सापडला!", "%s तुमच्या प्रोफाइलशी जुळते. लाभ: %s"},
		entity.NotificationInfo:     {"तुमची प्रोफाइल पूर्ण करा", "वैयक्तिक योजना शिफारसी मिळवण्यासाठी तुमचा व्यवसाय, व्यवसायाचा प्रकार आणि अनुभव जोडा."},
		entity.NotificationReminder: {"तुमचे सेटअप पूर्ण करा", "ऑनबोर्डिंग पूर्ण करण्यासाठी तुमची प्रोफाइल पूर्ण करा आणि जुळणाऱ्या योजना पहा."},
		entity.NotificationSuccess:  {"अर्ज स्थिती अपडेट", "तुमचा व्यवसाय \"%s\" निर्देशिकेत सूचीबद्ध आहे."},
	},
}

// NotificationUseCase arma los avisos de la campana a partir del estado del usuario.
type NotificationUseCase struct {
	profiles   repository.ProfileRepository
	businesses repository.BusinessRepository
	recs       *RecommendationUseCase
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(
	profiles repository.ProfileRepository,
	businesses repository.BusinessRepository,
	recs *RecommendationUseCase,
) *NotificationUseCase {
	return &NotificationUseCase{profiles: profiles, businesses: businesses, recs: recs}
}

// List devuelve, en este orden: un aviso "scheme" por coincidencia alta, "info" si el perfil
// está incompleto, "reminder" si el onboarding no terminó y "success" por el negocio más reciente.
//
// Perfil y negocios se consultan en paralelo.
func (uc *NotificationUseCase) List(ctx context.Context, userID, lang string) (*dto.NotificationListResponse, error) {
	type profileResult struct {
		profile *entity.Profile
		err     error
	}
	type businessResult struct {
		list []*entity.Business
		err  error
	}
	profileCh := make(chan profileResult, 1)
	businessCh := make(chan businessResult, 1)

	go func() {
		p, err := uc.profiles.GetByUserID(ctx, userID)
		profileCh <- profileResult{p, err}
	}()
	go func() {
		list, err := uc.businesses.List(ctx, entity.BusinessFilter{OwnerID: userID, Limit: 1})
		businessCh <- businessResult{list, err}
	}()

	pr := <-profileCh
	br := <-businessCh
	if pr.err != nil {
		return nil, fmt.Errorf("notificaciones perfil: %w", pr.err)
	}
	if br.err != nil {
		return nil, fmt.Errorf("notificaciones negocios: %w", br.err)
	}

	p := pr.profile
	if p == nil {
		p = &entity.Profile{UserID: userID}
	}
	if lang == "" {
		lang = p.Language
	}
	lang = i18n.Normalize(lang)
	texts := notificationTexts[lang]

	out := &dto.NotificationListResponse{Data: []dto.NotificationResponse{}}
	add := func(kind, message string) {
		out.Data = append(out.Data, dto.NotificationResponse{
			ID:      kind + "-" + strconv.Itoa(len(out.Data)+1),
			Type:    kind,
			Title:   texts[kind].Title,
			Message: message,
		})
	}

	for _, r := range uc.recs.ForProfile(lang, p).Data {
		if r.Match == recommendation.MatchHigh {
			add(entity.NotificationScheme, fmt.Sprintf(texts[entity.NotificationScheme].Message, r.Title, r.Benefit))
		}
	}
	if !p.IsComplete() {
		add(entity.NotificationInfo, texts[entity.NotificationInfo].Message)
	}
	if !p.OnboardingCompleted {
		add(entity.NotificationReminder, texts[entity.NotificationReminder].Message)
	}
	if len(br.list) > 0 {
		add(entity.NotificationSuccess, fmt.Sprintf(texts[entity.NotificationSuccess].Message, br.list[0].Name))
	}
	out.Count = len(out.Data)
	return out, nil
}
