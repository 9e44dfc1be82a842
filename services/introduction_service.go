// services/introduction_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"cardlink.app/configs"
	"cardlink.app/configs/configslog"
	"cardlink.app/models"
	"cardlink.app/pkg/ipapi"
	"cardlink.app/pkg/vonage"
	"cardlink.app/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IntroductionError özel servis hataları
type IntroductionError string

func (e IntroductionError) Error() string { return string(e) }

// Pipeline'ın kullanıcıya dönen hata mesajları. Contact kaydı OLUŞMADAN önce
// dönen hatalar (invalid, not found) yan etkisizdir; sonrakiler kayda işlenir.
const (
	ErrIntroInvalidRequest IntroductionError = "cardId, name and phone are required"
	ErrIntroCardNotFound   IntroductionError = "Card not found"
	ErrIntroPersistence    IntroductionError = "Failed to save contact"
	ErrIntroNotConfigured  IntroductionError = "SMS service not configured"
)

// Kart sahibinin profili okunamazsa mesajda kullanılacak etiket.
const fallbackOwnerName = "A contact"

// GeolocationResolver ağ adresini kaba konuma çözen arayüz.
type GeolocationResolver interface {
	Resolve(ctx context.Context, address string) (*ipapi.Location, error)
}

// SMSSender harici SMS sağlayıcısının dar arayüzü.
type SMSSender interface {
	Configured() bool
	Send(ctx context.Context, to, text string) (*vonage.SendResult, error)
}

// IntroductionRequest public contact formundan gelen istek.
// CardKey, public sayfanın bildiği opak kart kimliğidir (share key).
type IntroductionRequest struct {
	CardKey       string
	Name          string
	Phone         string
	SourceAddress string
}

// IntroductionResult pipeline'ın kullanıcıya dönen sonucu.
type IntroductionResult struct {
	Success   bool
	Message   string
	ContactID uuid.UUID
}

// IIntroductionService tanışma (introduction) pipeline'ı için arayüz.
type IIntroductionService interface {
	SubmitIntroduction(ctx context.Context, req IntroductionRequest) (*IntroductionResult, error)
}

// IntroductionService pipeline'ı uygular: doğrula -> kartı çöz -> sahibi çöz ->
// konumu çöz -> contact'ı pending yaz -> SMS gönder -> durumu güncelle ->
// denetim kaydı ekle -> sonucu dön. Adımlar sıralı ve bloklayıcıdır;
// contact yazıldıktan sonra hiçbir adım atlanmaz.
type IntroductionService struct {
	cards    repositories.ICardRepository
	users    repositories.IUserRepository
	contacts repositories.IContactRepository
	logs     repositories.IMessageLogRepository
	geo      GeolocationResolver
	sms      SMSSender
}

// NewIntroductionService gerçek bağımlılıklarla bir pipeline oluşturur.
func NewIntroductionService() IIntroductionService {
	cfg := configs.Get()
	return &IntroductionService{
		cards:    repositories.NewCardRepository(),
		users:    repositories.NewUserRepository(),
		contacts: repositories.NewContactRepository(),
		logs:     repositories.NewMessageLogRepository(),
		geo:      ipapi.NewClient(cfg.IPAPIBaseURL, time.Duration(cfg.IPAPITimeoutSeconds)*time.Second),
		sms:      vonage.NewClient(cfg.VonageAPIKey, cfg.VonageAPISecret, cfg.VonageSender, cfg.VonageBaseURL),
	}
}

// SubmitIntroduction bir bağlantı isteğini uçtan uca işler.
// Aynı isteğin tekrarı yeni, bağımsız bir Contact ve SMS denemesi üretir;
// idempotentlik garantisi bilinçli olarak yoktur.
func (s *IntroductionService) SubmitIntroduction(ctx context.Context, req IntroductionRequest) (*IntroductionResult, error) {
	// 1. Zorunlu alanlar. Eksikse hiçbir kayıt oluşmaz.
	if strings.TrimSpace(req.CardKey) == "" ||
		strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Phone) == "" {
		return nil, ErrIntroInvalidRequest
	}

	// 2. Aktif kartı bul. Pasif kart da "yok" sayılır.
	card, err := s.cards.FindEnabledByShareKey(ctx, req.CardKey)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrIntroCardNotFound
		}
		configslog.Log.Error("intro: kart sorgusu başarısız", zap.String("card_key", req.CardKey), zap.Error(err))
		return nil, err
	}

	// 3. Kart sahibinin görünen adı. Profil yoksa pipeline durmaz.
	ownerName := fallbackOwnerName
	if owner, uErr := s.users.FindByID(ctx, card.CreatorUserID); uErr != nil {
		configslog.Log.Warn("intro: kart sahibi profili okunamadı",
			zap.Uint("owner_id", card.CreatorUserID), zap.Error(uErr))
	} else if owner.FullName != "" {
		ownerName = owner.FullName
	}

	// 4. Geolocation zenginleştirmesi. Her durumda devam edilir.
	var location *ipapi.Location
	if loc, gErr := s.geo.Resolve(ctx, req.SourceAddress); gErr != nil {
		configslog.Log.Warn("intro: geolocation çözümlenemedi",
			zap.String("address", req.SourceAddress), zap.Error(gErr))
	} else {
		location = loc
	}

	// 5. Contact'ı pending olarak yaz. Bu insert başarısızsa SMS denenmez.
	contact := &models.Contact{
		CardID:      card.ID,
		CardOwnerID: card.CreatorUserID,
		Name:        req.Name,
		Phone:       req.Phone,
		SentStatus:  models.SentStatusPending,
	}
	if location != nil {
		contact.City = &location.City
		contact.State = &location.State
		contact.Country = &location.Country
		contact.Latitude = &location.Latitude
		contact.Longitude = &location.Longitude
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		configslog.Log.Error("intro: contact kaydedilemedi", zap.Error(err))
		return nil, ErrIntroPersistence
	}

	// Bu noktadan sonra kayıt hangi adıma kadar gelindiyse onu yansıtmalı.
	// Pipeline beklenmedik şekilde sonlanırsa (panic, erken iptal) kayıt
	// mesajsız pending kalmasın.
	finalized := false
	defer func() {
		if finalized {
			return
		}
		cleanupCtx := context.WithoutCancel(ctx)
		if mErr := s.contacts.MarkFailedIfPending(cleanupCtx, contact.ID, "introduction aborted unexpectedly"); mErr != nil {
			configslog.Log.Error("intro: pending temizliği başarısız",
				zap.String("contact_id", contact.ID.String()), zap.Error(mErr))
		}
	}()

	// 6. Sağlayıcı kimlik bilgileri yoksa bu terminal ama raporlanan bir hatadır.
	if !s.sms.Configured() {
		msg := string(ErrIntroNotConfigured)
		if uErr := s.contacts.UpdateDeliveryStatus(ctx, contact.ID, models.SentStatusFailed, nil, &msg); uErr != nil {
			configslog.Log.Error("intro: durum güncellenemedi (not configured)",
				zap.String("contact_id", contact.ID.String()), zap.Error(uErr))
		}
		finalized = true
		return nil, ErrIntroNotConfigured
	}

	// 7. Mesaj metni.
	text := fmt.Sprintf("Hi %s, %s (%s) would like to connect! Phone: %s",
		card.Detail.FirstName, ownerName, req.Name, req.Phone)

	// 8-9. Tek deneme. Sağlayıcının reddi SendResult içinde, taşıma hatası sendErr'de.
	sendRes, sendErr := s.sms.Send(ctx, card.Detail.MobileNumber, text)

	// 10. Tam bir kez, sonuç ne olursa olsun durum güncellemesi.
	result := &IntroductionResult{ContactID: contact.ID}
	logEntry := &models.MessageLog{ContactID: contact.ID}

	switch {
	case sendErr != nil:
		errText := sendErr.Error()
		if uErr := s.contacts.UpdateDeliveryStatus(ctx, contact.ID, models.SentStatusFailed, nil, &errText); uErr != nil {
			configslog.Log.Error("intro: durum güncellenemedi (transport)",
				zap.String("contact_id", contact.ID.String()), zap.Error(uErr))
		}
		logEntry.Status = models.SentStatusFailed
		logEntry.APIResponse = rawErrorPayload(errText)
		result.Success = false
		result.Message = "Failed to send SMS"

	case sendRes.Success:
		now := time.Now()
		if uErr := s.contacts.UpdateDeliveryStatus(ctx, contact.ID, models.SentStatusSent, &now, nil); uErr != nil {
			configslog.Log.Error("intro: durum güncellenemedi (sent)",
				zap.String("contact_id", contact.ID.String()), zap.Error(uErr))
		}
		logEntry.Status = models.SentStatusSent
		logEntry.ProviderMessageID = nonEmptyPtr(sendRes.MessageID)
		logEntry.APIResponse = sendRes.RawResponse
		result.Success = true
		result.Message = "Introduction sent!"

	default:
		errText := sendRes.ErrorText
		if errText == "" {
			errText = "SMS delivery failed"
		}
		if uErr := s.contacts.UpdateDeliveryStatus(ctx, contact.ID, models.SentStatusFailed, nil, &errText); uErr != nil {
			configslog.Log.Error("intro: durum güncellenemedi (rejected)",
				zap.String("contact_id", contact.ID.String()), zap.Error(uErr))
		}
		logEntry.Status = models.SentStatusFailed
		logEntry.ProviderMessageID = nonEmptyPtr(sendRes.MessageID)
		logEntry.APIResponse = sendRes.RawResponse
		result.Success = false
		result.Message = "Failed to send SMS"
	}
	finalized = true

	// 11. Denetim kaydı; durum güncellemesinden bağımsız olarak her deneme için bir satır.
	if lErr := s.logs.Create(ctx, logEntry); lErr != nil {
		configslog.Log.Error("intro: message log yazılamadı",
			zap.String("contact_id", contact.ID.String()), zap.Error(lErr))
	}

	// 12.
	return result, nil
}

// rawErrorPayload taşıma hatası için geçerli bir JSON gövdesi üretir
// (api_response kolonu jsonb).
func rawErrorPayload(errText string) string {
	b, err := json.Marshal(map[string]string{"error": errText})
	if err != nil {
		return `{"error":"unknown"}`
	}
	return string(b)
}

func nonEmptyPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var _ IIntroductionService = (*IntroductionService)(nil)
