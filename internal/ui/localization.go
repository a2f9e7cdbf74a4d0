package ui

// Package ui provides user interface components

import (
	"github.com/ytget/video-converter/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyOpenVideo         = "open_video"
	KeySelectVideo       = "select_video"
	KeyDropHint          = "drop_hint"
	KeyModeConvert       = "mode_convert"
	KeyModeCrop          = "mode_crop"
	KeyTargetFormat      = "target_format"
	KeyStart             = "start"
	KeyEnd               = "end"
	KeyDuration          = "duration"
	KeyPreview           = "preview"
	KeyStopPreview       = "stop_preview"
	KeyPlay              = "play"
	KeyDownload          = "download"
	KeyShowInFolder      = "show_in_folder"
	KeyConvertAnother    = "convert_another"
	KeyPlaybackNotice    = "playback_not_supported"
	KeySavedTo           = "saved_to"
	KeyOutputDirectory   = "output_directory"
	KeyFFmpegPath        = "ffmpeg_path"
	KeyFFprobePath       = "ffprobe_path"
	KeyDefaultMode       = "default_mode"
	KeyRevealAfterSave   = "reveal_after_save"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyCheckEngine       = "check_engine"
	KeyEngineFound       = "engine_found"
	KeySettingsSaved     = "settings_saved"
	KeyRestartRequired   = "restart_required"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyErrorSavingFile   = "error_saving_file"
	KeyErrorReadingFile  = "error_reading_file"
	KeyVideoSettings     = "video_settings"
	KeyInterfaceSettings = "interface_settings"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetErrorText returns the localized message for an error kind
func (l *Localization) GetErrorText(kind model.ErrorKind) string {
	if kind == model.ErrorNone {
		return ""
	}
	text := l.GetText(string(kind))
	if text == string(kind) {
		return kind.Message()
	}
	return text
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Video Converter",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyOpenVideo:         "Open Video...",
		KeySelectVideo:       "Select Video",
		KeyDropHint:          "or drop a video file here (MP4, AVI, MOV, MKV, FLV, WMV)",
		KeyModeConvert:       "Convert",
		KeyModeCrop:          "Crop",
		KeyTargetFormat:      "Convert to",
		KeyStart:             "Start",
		KeyEnd:               "End",
		KeyDuration:          "Duration",
		KeyPreview:           "Preview",
		KeyStopPreview:       "Stop",
		KeyPlay:              "Play",
		KeyDownload:          "Download",
		KeyShowInFolder:      "Show in Folder",
		KeyConvertAnother:    "Convert Another Video",
		KeyPlaybackNotice:    "Playback not supported for this format. Please download the video to view it.",
		KeySavedTo:           "Saved to",
		KeyOutputDirectory:   "Output Directory",
		KeyFFmpegPath:        "FFmpeg Path",
		KeyFFprobePath:       "FFprobe Path",
		KeyDefaultMode:       "Default Mode",
		KeyRevealAfterSave:   "Show in folder after saving",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyCheckEngine:       "Check",
		KeyEngineFound:       "FFmpeg found",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyRestartRequired:   "Restart the application to use the new FFmpeg paths.",
		KeyErrorOpeningFile:  "Error opening file",
		KeyErrorSavingFile:   "Error saving file",
		KeyErrorReadingFile:  "Error reading file",
		KeyVideoSettings:     "Video Settings",
		KeyInterfaceSettings: "Interface Settings",

		model.ActionLoadingEngine: "Loading FFmpeg...",
		model.ActionConvert:       "Convert Video",
		model.ActionConverting:    "Converting...",
		model.ActionCrop:          "Crop Video",
		model.ActionCropping:      "Cropping...",

		string(model.ErrorUnsupportedFormat): "Unsupported file format. Please upload a valid video file.",
		string(model.ErrorConversionFailed):  "An error occurred during the conversion process.",
		string(model.ErrorCroppingFailed):    "An error occurred during the cropping process.",
		string(model.ErrorEngineLoadFailed):  "Failed to load FFmpeg. Check the FFmpeg path in settings.",
		string(model.ErrorProbeFailed):       "Could not read the video duration.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Конвертер видео",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyOpenVideo:         "Открыть видео...",
		KeySelectVideo:       "Выбрать видео",
		KeyDropHint:          "или перетащите видеофайл сюда (MP4, AVI, MOV, MKV, FLV, WMV)",
		KeyModeConvert:       "Конвертация",
		KeyModeCrop:          "Обрезка",
		KeyTargetFormat:      "Конвертировать в",
		KeyStart:             "Начало",
		KeyEnd:               "Конец",
		KeyDuration:          "Длительность",
		KeyPreview:           "Просмотр",
		KeyStopPreview:       "Стоп",
		KeyPlay:              "Воспроизвести",
		KeyDownload:          "Скачать",
		KeyShowInFolder:      "Показать в папке",
		KeyConvertAnother:    "Конвертировать другое видео",
		KeyPlaybackNotice:    "Воспроизведение этого формата не поддерживается. Скачайте видео, чтобы посмотреть его.",
		KeySavedTo:           "Сохранено в",
		KeyOutputDirectory:   "Папка сохранения",
		KeyFFmpegPath:        "Путь к FFmpeg",
		KeyFFprobePath:       "Путь к FFprobe",
		KeyDefaultMode:       "Режим по умолчанию",
		KeyRevealAfterSave:   "Показывать в папке после сохранения",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyCheckEngine:       "Проверить",
		KeyEngineFound:       "FFmpeg найден",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyRestartRequired:   "Перезапустите приложение, чтобы применить новые пути FFmpeg.",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyErrorSavingFile:   "Ошибка сохранения файла",
		KeyErrorReadingFile:  "Ошибка чтения файла",
		KeyVideoSettings:     "Настройки видео",
		KeyInterfaceSettings: "Настройки интерфейса",

		model.ActionLoadingEngine: "Загрузка FFmpeg...",
		model.ActionConvert:       "Конвертировать",
		model.ActionConverting:    "Конвертация...",
		model.ActionCrop:          "Обрезать",
		model.ActionCropping:      "Обрезка...",

		string(model.ErrorUnsupportedFormat): "Неподдерживаемый формат файла. Загрузите корректный видеофайл.",
		string(model.ErrorConversionFailed):  "Во время конвертации произошла ошибка.",
		string(model.ErrorCroppingFailed):    "Во время обрезки произошла ошибка.",
		string(model.ErrorEngineLoadFailed):  "Не удалось загрузить FFmpeg. Проверьте путь к FFmpeg в настройках.",
		string(model.ErrorProbeFailed):       "Не удалось определить длительность видео.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Conversor de Vídeo",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyOpenVideo:         "Abrir Vídeo...",
		KeySelectVideo:       "Selecionar Vídeo",
		KeyDropHint:          "ou solte um arquivo de vídeo aqui (MP4, AVI, MOV, MKV, FLV, WMV)",
		KeyModeConvert:       "Converter",
		KeyModeCrop:          "Cortar",
		KeyTargetFormat:      "Converter para",
		KeyStart:             "Início",
		KeyEnd:               "Fim",
		KeyDuration:          "Duração",
		KeyPreview:           "Pré-visualizar",
		KeyStopPreview:       "Parar",
		KeyPlay:              "Reproduzir",
		KeyDownload:          "Baixar",
		KeyShowInFolder:      "Mostrar na Pasta",
		KeyConvertAnother:    "Converter Outro Vídeo",
		KeyPlaybackNotice:    "Reprodução não suportada para este formato. Baixe o vídeo para assisti-lo.",
		KeySavedTo:           "Salvo em",
		KeyOutputDirectory:   "Diretório de Saída",
		KeyFFmpegPath:        "Caminho do FFmpeg",
		KeyFFprobePath:       "Caminho do FFprobe",
		KeyDefaultMode:       "Modo Padrão",
		KeyRevealAfterSave:   "Mostrar na pasta após salvar",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyCheckEngine:       "Verificar",
		KeyEngineFound:       "FFmpeg encontrado",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyRestartRequired:   "Reinicie o aplicativo para usar os novos caminhos do FFmpeg.",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyErrorSavingFile:   "Erro ao salvar arquivo",
		KeyErrorReadingFile:  "Erro ao ler arquivo",
		KeyVideoSettings:     "Configurações de Vídeo",
		KeyInterfaceSettings: "Configurações da Interface",

		model.ActionLoadingEngine: "Carregando FFmpeg...",
		model.ActionConvert:       "Converter Vídeo",
		model.ActionConverting:    "Convertendo...",
		model.ActionCrop:          "Cortar Vídeo",
		model.ActionCropping:      "Cortando...",

		string(model.ErrorUnsupportedFormat): "Formato de arquivo não suportado. Envie um arquivo de vídeo válido.",
		string(model.ErrorConversionFailed):  "Ocorreu um erro durante a conversão.",
		string(model.ErrorCroppingFailed):    "Ocorreu um erro durante o corte.",
		string(model.ErrorEngineLoadFailed):  "Falha ao carregar o FFmpeg. Verifique o caminho do FFmpeg nas configurações.",
		string(model.ErrorProbeFailed):       "Não foi possível ler a duração do vídeo.",
	}
}
